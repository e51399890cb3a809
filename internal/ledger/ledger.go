// Package ledger implements the wallet's mutation engine.
//
// Every operation is a total function from an old snapshot to a new one:
// the input WalletState is never modified, and on a validation error the
// input snapshot is handed back untouched. Balance always equals the
// baseline set by the last explicit correction plus the net of the
// transactions recorded since.
//
// The engine is not safe for concurrent mutation of a shared snapshot;
// callers that need multi-writer access must serialize snapshot
// replacement (the wallet service does exactly that).
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"portafoglio/internal/core"
)

// Engine performs ledger operations. The zero value is not usable; use New.
type Engine struct {
	now   func() time.Time
	newID func() string
}

// Option configures an Engine. Used by tests to pin the clock and ids.
type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) { e.newID = gen }
}

func New(opts ...Option) *Engine {
	e := &Engine{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Record validates and records a transaction, returning the new snapshot
// and the stored transaction. The balance moves by +amount for income and
// -amount for expense, and a notification is prepended to the feed.
// Validation failures leave the snapshot untouched.
func (e *Engine) Record(s core.WalletState, t core.TransactionType, amount float64, category, description string, date time.Time) (core.WalletState, core.Transaction, error) {
	tx := core.Transaction{
		ID:          e.newID(),
		Type:        t,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}
	if err := tx.Validate(); err != nil {
		return s, core.Transaction{}, err
	}

	out := s.Clone()
	out.Balance += tx.Signed()
	out.Transactions = append([]core.Transaction{tx}, out.Transactions...)
	out.Notifications = append([]core.NotificationRecord{e.notificationFor(tx)}, out.Notifications...)
	return out, tx, nil
}

// Delete removes the transaction with the given id and reverses its
// balance effect. An unknown id is a benign no-op: the snapshot comes
// back unchanged. Notifications already created for the transaction are
// kept; the feed is an append-only log decoupled from ledger mutations.
func (e *Engine) Delete(s core.WalletState, id string) core.WalletState {
	idx := -1
	for i, tx := range s.Transactions {
		if tx.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	out := s.Clone()
	out.Balance -= out.Transactions[idx].Signed()
	out.Transactions = append(out.Transactions[:idx], out.Transactions[idx+1:]...)
	return out
}

// CorrectBalance replaces the balance wholesale without touching the
// transaction or notification history. This resets the baseline against
// which later transaction deltas accumulate; it is an escape hatch for
// reconciling drift, not a transaction.
func (e *Engine) CorrectBalance(s core.WalletState, balance float64) core.WalletState {
	out := s.Clone()
	out.Balance = balance
	return out
}

// ProfileUpdate carries the fields of a profile update. Nil fields are
// left as they are; Balance, when set, applies a balance correction in
// the same operation.
type ProfileUpdate struct {
	Name    *string
	Email   *string
	Avatar  *string
	Balance *float64
}

// UpdateProfile applies a wholesale profile update plus an optional
// balance correction. History is untouched.
func (e *Engine) UpdateProfile(s core.WalletState, u ProfileUpdate) core.WalletState {
	out := s.Clone()
	if u.Name != nil {
		out.User.Name = *u.Name
	}
	if u.Email != nil {
		out.User.Email = *u.Email
	}
	if u.Avatar != nil {
		out.User.Avatar = *u.Avatar
	}
	if u.Balance != nil {
		out.Balance = *u.Balance
	}
	return out
}

// ClearNotifications empties the notification feed unconditionally.
func (e *Engine) ClearNotifications(s core.WalletState) core.WalletState {
	out := s.Clone()
	out.Notifications = []core.NotificationRecord{}
	return out
}

// ToggleTheme flips the theme between light and dark.
func (e *Engine) ToggleTheme(s core.WalletState) core.WalletState {
	out := s.Clone()
	out.Theme = out.Theme.Toggled()
	return out
}

func (e *Engine) notificationFor(tx core.Transaction) core.NotificationRecord {
	title := "Transaction Alert"
	verb := "Spent"
	kind := core.Debit
	if tx.Type == core.Income {
		title = "Money Received"
		verb = "Received"
		kind = core.Credit
	}
	return core.NotificationRecord{
		ID:      e.newID(),
		Title:   title,
		Message: fmt.Sprintf("%s %s on %s", verb, core.FormatAmount(tx.Amount), tx.Category),
		Date:    e.now(),
		Kind:    kind,
		Read:    false,
	}
}
