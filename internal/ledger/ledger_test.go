package ledger

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"portafoglio/internal/core"
)

func testEngine() *Engine {
	n := 0
	return New(
		WithClock(func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }),
		WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)
}

func TestRecordExpenseOnEmptyWallet(t *testing.T) {
	e := testEngine()
	today := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	s, tx, err := e.Record(core.NewWalletState(), core.Expense, 42.50, "Food", "Lunch", today)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if s.Balance != -42.50 {
		t.Fatalf("balance = %v, want -42.50", s.Balance)
	}
	if len(s.Transactions) != 1 || s.Transactions[0].ID != tx.ID {
		t.Fatalf("transactions = %+v, want the recorded one", s.Transactions)
	}
	if len(s.Notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(s.Notifications))
	}
	n := s.Notifications[0]
	if n.Kind != core.Debit {
		t.Fatalf("notification kind = %q, want debit", n.Kind)
	}
	if !strings.Contains(n.Message, "42.50") || !strings.Contains(n.Message, "Food") {
		t.Fatalf("notification message %q must mention amount and category", n.Message)
	}
	if n.Read {
		t.Fatal("new notifications must start unread")
	}
}

func TestRecordIncomeThenDeleteRestoresBalance(t *testing.T) {
	e := testEngine()
	s := core.NewWalletState()
	s.Balance = 100

	s, tx, err := e.Record(s, core.Income, 50, "Salary", "", time.Now())
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if s.Balance != 150 {
		t.Fatalf("balance after income = %v, want 150", s.Balance)
	}
	if s.Notifications[0].Kind != core.Credit || s.Notifications[0].Title != "Money Received" {
		t.Fatalf("income notification = %+v", s.Notifications[0])
	}

	s = e.Delete(s, tx.ID)
	if s.Balance != 100 {
		t.Fatalf("balance after delete = %v, want 100", s.Balance)
	}
	if len(s.Transactions) != 0 {
		t.Fatalf("transactions after delete = %d, want 0", len(s.Transactions))
	}
	if len(s.Notifications) != 1 {
		t.Fatal("deleting a transaction must not retract its notification")
	}
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	e := testEngine()
	s, _, err := e.Record(core.NewWalletState(), core.Expense, 10, "Bills", "", time.Now())
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	got := e.Delete(s, "no-such-id")
	if !reflect.DeepEqual(got, s) {
		t.Fatal("delete of an unknown id must return the snapshot unchanged")
	}
}

func TestRecordInvalidAmountLeavesStateUntouched(t *testing.T) {
	e := testEngine()
	before, _, err := e.Record(core.NewWalletState(), core.Income, 25, "Salary", "", time.Now())
	if err != nil {
		t.Fatalf("seed record: %v", err)
	}

	for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		after, _, err := e.Record(before, core.Expense, amount, "Food", "", time.Now())
		if !errors.Is(err, core.ErrInvalidAmount) {
			t.Fatalf("amount %v: expected ErrInvalidAmount, got %v", amount, err)
		}
		if !reflect.DeepEqual(after, before) {
			t.Fatalf("amount %v: failed record must not alter the snapshot", amount)
		}
	}
}

func TestRecordRejectsBadCategoryAndType(t *testing.T) {
	e := testEngine()
	s := core.NewWalletState()

	if _, _, err := e.Record(s, core.Expense, 5, "  ", "", time.Now()); !errors.Is(err, core.ErrEmptyCategory) {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}
	if _, _, err := e.Record(s, "transfer", 5, "Food", "", time.Now()); !errors.Is(err, core.ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
	if _, _, err := e.Record(s, core.Expense, 5, "Food", "", time.Time{}); !errors.Is(err, core.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

// Balance always equals the baseline from the last correction plus the
// net of transactions recorded since, across any sequence of operations.
func TestBalanceInvariantAcrossSequence(t *testing.T) {
	e := testEngine()
	s := core.NewWalletState()
	now := time.Now()

	var ids []string
	record := func(ty core.TransactionType, amount float64) {
		var tx core.Transaction
		var err error
		s, tx, err = e.Record(s, ty, amount, "Other", "", now)
		if err != nil {
			t.Fatalf("record: %v", err)
		}
		ids = append(ids, tx.ID)
	}

	record(core.Income, 100)
	record(core.Expense, 30)
	record(core.Expense, 20)
	if s.Balance != 50 {
		t.Fatalf("balance = %v, want 50", s.Balance)
	}

	s = e.Delete(s, ids[1]) // undo the 30 expense
	if s.Balance != 80 {
		t.Fatalf("balance after delete = %v, want 80", s.Balance)
	}

	// Correction resets the baseline without touching history.
	s = e.CorrectBalance(s, 500)
	if s.Balance != 500 || len(s.Transactions) != 2 {
		t.Fatalf("after correction balance = %v, transactions = %d", s.Balance, len(s.Transactions))
	}

	record(core.Expense, 100)
	if s.Balance != 400 {
		t.Fatalf("balance relative to new baseline = %v, want 400", s.Balance)
	}
}

func TestRecordPrependsMostRecentFirst(t *testing.T) {
	e := testEngine()
	s := core.NewWalletState()
	now := time.Now()

	var err error
	s, _, err = e.Record(s, core.Income, 1, "Salary", "first", now)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	s, _, err = e.Record(s, core.Income, 2, "Salary", "second", now)
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	if s.Transactions[0].Description != "second" || s.Transactions[1].Description != "first" {
		t.Fatal("transactions must be ordered most-recent-first")
	}
	if s.Notifications[0].Message == s.Notifications[1].Message {
		t.Fatal("each record must synthesize its own notification")
	}
}

func TestRecordDoesNotMutateInput(t *testing.T) {
	e := testEngine()
	before, _, err := e.Record(core.NewWalletState(), core.Income, 10, "Gift", "", time.Now())
	if err != nil {
		t.Fatalf("seed record: %v", err)
	}
	snapshot := before.Clone()

	if _, _, err := e.Record(before, core.Expense, 3, "Food", "", time.Now()); err != nil {
		t.Fatalf("record: %v", err)
	}
	if !reflect.DeepEqual(before, snapshot) {
		t.Fatal("Record must not mutate its input snapshot")
	}
}

func TestUpdateProfile(t *testing.T) {
	e := testEngine()
	s := core.NewWalletState()
	s.Balance = 10

	name := "Alex"
	bal := 250.0
	s = e.UpdateProfile(s, ProfileUpdate{Name: &name, Balance: &bal})
	if s.User.Name != "Alex" {
		t.Fatalf("name = %q, want Alex", s.User.Name)
	}
	if s.User.Email != core.DefaultProfile().Email {
		t.Fatal("unset fields must be left alone")
	}
	if s.Balance != 250 {
		t.Fatalf("balance = %v, want 250", s.Balance)
	}

	// Update without balance leaves the baseline alone.
	email := "alex@example.com"
	s = e.UpdateProfile(s, ProfileUpdate{Email: &email})
	if s.Balance != 250 || s.User.Email != "alex@example.com" {
		t.Fatalf("after email update: balance = %v, email = %q", s.Balance, s.User.Email)
	}
}

func TestClearNotificationsAndToggleTheme(t *testing.T) {
	e := testEngine()
	s, _, err := e.Record(core.NewWalletState(), core.Expense, 5, "Food", "", time.Now())
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	cleared := e.ClearNotifications(s)
	if len(cleared.Notifications) != 0 {
		t.Fatal("clear must empty the feed")
	}
	if cleared.Balance != s.Balance || len(cleared.Transactions) != len(s.Transactions) {
		t.Fatal("clear must not touch ledger state")
	}

	dark := e.ToggleTheme(s)
	if dark.Theme != core.Dark {
		t.Fatalf("theme = %q, want dark", dark.Theme)
	}
	if dark.Balance != s.Balance {
		t.Fatal("theme toggle must not touch the balance")
	}
	if e.ToggleTheme(dark).Theme != core.Light {
		t.Fatal("toggling twice must round-trip")
	}
}
