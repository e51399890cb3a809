// Package store persists wallet snapshots. Two backends are available:
// SQLite (default) and a single JSON file. Both are load-on-start,
// save-on-every-change stores; saving is best-effort and callers are
// expected to swallow failures rather than roll back in-memory state.
package store

import (
	"context"
	"math"

	"portafoglio/internal/core"
)

// Store loads and saves wallet snapshots.
type Store interface {
	// Load returns the persisted snapshot, or a clean-slate state when
	// nothing has been persisted yet. Partial or corrupt data degrades
	// to the documented per-field fallbacks instead of failing.
	Load(ctx context.Context) (core.WalletState, error)

	// Save persists the whole snapshot, replacing whatever was stored.
	Save(ctx context.Context, s core.WalletState) error

	Close() error
}

// Normalize applies the fallback policy for partially persisted or
// corrupt data: invalid balance becomes 0, missing lists become empty,
// an unknown theme becomes light, a missing profile becomes the default
// profile. Every backend runs loaded state through this before handing
// it to the caller.
func Normalize(s core.WalletState) core.WalletState {
	if math.IsNaN(s.Balance) || math.IsInf(s.Balance, 0) {
		s.Balance = 0
	}
	if s.Transactions == nil {
		s.Transactions = []core.Transaction{}
	}
	if s.Notifications == nil {
		s.Notifications = []core.NotificationRecord{}
	}
	if !s.Theme.IsValid() {
		s.Theme = core.Light
	}
	if (s.User == core.UserProfile{}) {
		s.User = core.DefaultProfile()
	}
	return s
}
