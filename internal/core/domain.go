package core

import (
	"errors"
	"math"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	Credit NotificationKind = "credit"
	Debit  NotificationKind = "debit"
	Alert  NotificationKind = "alert"
	Info   NotificationKind = "info"
)

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

type (
	TransactionType string

	NotificationKind string

	Theme string

	// Transaction is a single income or expense entry. Immutable once
	// recorded; the only way to undo it is deleting it wholesale.
	Transaction struct {
		ID          string
		Type        TransactionType
		Amount      float64 // always positive; Type carries the sign
		Category    string
		Description string
		Date        time.Time
	}

	// NotificationRecord is one entry of the append-only notification
	// feed. Records are created as a side effect of ledger operations
	// and are never mutated afterwards, only cleared in bulk.
	NotificationRecord struct {
		ID      string
		Title   string
		Message string
		Date    time.Time
		Kind    NotificationKind
		Read    bool
	}

	UserProfile struct {
		Name   string
		Email  string
		Avatar string
	}

	// WalletState is the aggregate root. Every ledger operation takes a
	// snapshot and produces a wholly new one; no partial updates are
	// observable. Transactions and Notifications are most-recent-first.
	WalletState struct {
		Balance       float64
		Transactions  []Transaction
		Notifications []NotificationRecord
		Theme         Theme
		User          UserProfile
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidDate   = errors.New("invalid date")
)

// DefaultProfile returns the profile a fresh wallet starts with.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:   "My Wallet",
		Email:  "user@example.com",
		Avatar: "https://ui-avatars.com/api/?name=My+Wallet&background=7c3aed&color=fff&rounded=true&bold=true",
	}
}

// NewWalletState returns a clean-slate wallet: zero balance, empty
// histories, light theme, default profile.
func NewWalletState() WalletState {
	return WalletState{
		Balance:       0,
		Transactions:  []Transaction{},
		Notifications: []NotificationRecord{},
		Theme:         Light,
		User:          DefaultProfile(),
	}
}

func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

func (k NotificationKind) IsValid() bool {
	switch k {
	case Credit, Debit, Alert, Info:
		return true
	default:
		return false
	}
}

func (th Theme) IsValid() bool {
	return th == Light || th == Dark
}

// Toggled flips between light and dark.
func (th Theme) Toggled() Theme {
	if th == Dark {
		return Light
	}
	return Dark
}

func (t Transaction) Validate() error {
	if !t.Type.IsValid() {
		return ErrInvalidType
	}
	if t.Amount <= 0 || math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Signed returns the transaction's effect on the balance: positive for
// income, negative for expense.
func (t Transaction) Signed() float64 {
	if t.Type == Expense {
		return -t.Amount
	}
	return t.Amount
}

// Clone returns a deep copy of the snapshot. Slices are copied so that
// the clone and the original never share backing arrays.
func (s WalletState) Clone() WalletState {
	out := s
	out.Transactions = make([]Transaction, len(s.Transactions))
	copy(out.Transactions, s.Transactions)
	out.Notifications = make([]NotificationRecord, len(s.Notifications))
	copy(out.Notifications, s.Notifications)
	return out
}
