// Package wallet is the application service around the ledger engine.
// It owns the live snapshot, routes every mutation through the engine,
// and persists the result after each change. Persistence is best-effort:
// a failed save is logged and swallowed, never surfaced to the UI and
// never rolled back.
package wallet

import (
	"context"
	"fmt"
	"sync"
	"time"

	"portafoglio/internal/core"
	"portafoglio/internal/ledger"
	"portafoglio/internal/log"
	"portafoglio/internal/stats"
	"portafoglio/internal/store"
)

// Service serializes all snapshot replacement behind one mutex, so it is
// safe to call from the UI's command goroutines. The ledger engine
// itself stays a pure single-writer component.
type Service struct {
	mu     sync.Mutex
	state  core.WalletState
	engine *ledger.Engine
	store  store.Store
	logger *log.Logger
}

// NewService loads the persisted snapshot (or the clean slate) and
// returns a ready service.
func NewService(ctx context.Context, st store.Store, logger *log.Logger) (*Service, error) {
	state, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load wallet state: %w", err)
	}
	return &Service{
		state:  state,
		engine: ledger.New(),
		store:  st,
		logger: logger.WithComponent(log.ComponentWallet),
	}, nil
}

// State returns a deep copy of the current snapshot.
func (s *Service) State() core.WalletState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// RecordTransaction records an income or expense entry. Validation
// failures leave the wallet untouched.
func (s *Service) RecordTransaction(ctx context.Context, t core.TransactionType, amount float64, category, description string, date time.Time) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, tx, err := s.engine.Record(s.state, t, amount, category, description, date)
	if err != nil {
		return core.Transaction{}, err
	}
	s.replace(ctx, next)
	s.logger.InfoContext(ctx, "Recorded transaction",
		log.FieldOperation, log.OpRecord,
		log.FieldTransactionID, tx.ID,
		log.FieldType, string(tx.Type),
		log.FieldCategory, tx.Category,
		log.FieldAmount, tx.Amount,
		log.FieldBalance, next.Balance)
	return tx, nil
}

// DeleteTransaction removes a transaction and reverses its balance
// effect. Unknown ids are a benign no-op.
func (s *Service) DeleteTransaction(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.engine.Delete(s.state, id)
	if len(next.Transactions) == len(s.state.Transactions) {
		return
	}
	s.replace(ctx, next)
	s.logger.InfoContext(ctx, "Deleted transaction",
		log.FieldOperation, log.OpDelete,
		log.FieldTransactionID, id,
		log.FieldBalance, next.Balance)
}

// CorrectBalance resets the balance baseline without touching history.
func (s *Service) CorrectBalance(ctx context.Context, balance float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replace(ctx, s.engine.CorrectBalance(s.state, balance))
	s.logger.InfoContext(ctx, "Corrected balance",
		log.FieldOperation, log.OpCorrect,
		log.FieldBalance, balance)
}

// UpdateProfile applies a partial profile update, optionally including a
// balance correction.
func (s *Service) UpdateProfile(ctx context.Context, u ledger.ProfileUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replace(ctx, s.engine.UpdateProfile(s.state, u))
	s.logger.InfoContext(ctx, "Updated profile", log.FieldOperation, log.OpProfile)
}

// ClearNotifications empties the notification feed.
func (s *Service) ClearNotifications(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replace(ctx, s.engine.ClearNotifications(s.state))
	s.logger.InfoContext(ctx, "Cleared notifications", log.FieldOperation, log.OpClear)
}

// ToggleTheme flips the theme.
func (s *Service) ToggleTheme(ctx context.Context) core.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replace(ctx, s.engine.ToggleTheme(s.state))
	s.logger.InfoContext(ctx, "Toggled theme",
		log.FieldOperation, log.OpTheme,
		"theme", string(s.state.Theme))
	return s.state.Theme
}

// Statistics filters the current transaction list by the window anchored
// at ref and summarizes it.
func (s *Service) Statistics(w stats.Window, ref time.Time) ([]core.Transaction, stats.Summary) {
	s.mu.Lock()
	txs := make([]core.Transaction, len(s.state.Transactions))
	copy(txs, s.state.Transactions)
	s.mu.Unlock()

	filtered := stats.FilterByWindow(txs, w, ref)
	return filtered, stats.Summarize(filtered)
}

// Close releases the underlying store.
func (s *Service) Close() error {
	return s.store.Close()
}

// replace swaps in the new snapshot and persists it best-effort. Callers
// hold the mutex.
func (s *Service) replace(ctx context.Context, next core.WalletState) {
	s.state = next
	if err := s.store.Save(ctx, next.Clone()); err != nil {
		// Persistence failure must not block the UI or roll back the
		// in-memory snapshot.
		s.logger.WarnContext(ctx, "Failed to persist wallet state",
			log.FieldOperation, log.OpSave,
			log.FieldError, err)
	}
}
