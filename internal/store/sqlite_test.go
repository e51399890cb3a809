package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"portafoglio/internal/core"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "wallet.db"), testLogger())
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreLoadEmpty(t *testing.T) {
	s := newTestSQLiteStore(t)

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, core.NewWalletState()) {
		t.Fatalf("empty database must yield the clean slate, got %+v", got)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	want := sampleState()
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestSQLiteStoreSaveReplacesSnapshot(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	first := sampleState()
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Second snapshot drops a transaction and clears notifications;
	// save must replace, not accumulate.
	second := first.Clone()
	second.Transactions = second.Transactions[:1]
	second.Notifications = []core.NotificationRecord{}
	second.Balance = 100
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Transactions) != 1 || len(got.Notifications) != 0 || got.Balance != 100 {
		t.Fatalf("save did not replace the previous snapshot: %+v", got)
	}
}

func TestSQLiteStorePreservesOrder(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	state := sampleState()
	if err := s.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Transactions[0].ID != "t2" || got.Transactions[1].ID != "t1" {
		t.Fatalf("most-recent-first order lost: %+v", got.Transactions)
	}
}
