package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"portafoglio/internal/core"
	"portafoglio/internal/log"
)

// FileStore persists the snapshot as a single JSON document, the same
// shape the original app kept in browser storage. Writes go through a
// temp file plus rename so a crash never leaves a half-written state.
type FileStore struct {
	path   string
	logger *log.Logger
}

func NewFileStore(path string, logger *log.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger.WithComponent(log.ComponentStore),
	}
}

// Wire format. Balance and user are pointers so that a document missing
// them degrades to the documented fallbacks instead of silently reading
// zero values as intent.
type (
	wireState struct {
		Balance       *float64         `json:"balance"`
		Transactions  []wireTx         `json:"transactions"`
		Theme         string           `json:"theme"`
		User          *wireProfile     `json:"user"`
		Notifications []wireNote       `json:"notifications"`
	}

	wireTx struct {
		ID          string  `json:"id"`
		Type        string  `json:"type"`
		Amount      float64 `json:"amount"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
		Date        string  `json:"date"`
	}

	wireProfile struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		Avatar string `json:"avatar"`
	}

	wireNote struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		Message string `json:"message"`
		Date    string `json:"date"`
		Type    string `json:"type"`
		Read    bool   `json:"read"`
	}
)

func (s *FileStore) Load(ctx context.Context) (core.WalletState, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return core.NewWalletState(), nil
	}
	if err != nil {
		return core.NewWalletState(), fmt.Errorf("read state file: %w", err)
	}

	var w wireState
	if err := json.Unmarshal(data, &w); err != nil {
		// Corrupt document: degrade to a clean slate rather than abort.
		s.logger.WarnContext(ctx, "State file is corrupt, starting from a clean slate",
			log.FieldPath, s.path, log.FieldError, err)
		return core.NewWalletState(), nil
	}

	state := core.WalletState{Theme: core.Theme(w.Theme)}
	if w.Balance != nil {
		state.Balance = *w.Balance
	}
	if w.User != nil {
		state.User = core.UserProfile{Name: w.User.Name, Email: w.User.Email, Avatar: w.User.Avatar}
	}
	for _, t := range w.Transactions {
		state.Transactions = append(state.Transactions, core.Transaction{
			ID:          t.ID,
			Type:        core.TransactionType(t.Type),
			Amount:      t.Amount,
			Category:    t.Category,
			Description: t.Description,
			Date:        parseStoredTime(t.Date),
		})
	}
	for _, n := range w.Notifications {
		state.Notifications = append(state.Notifications, core.NotificationRecord{
			ID:      n.ID,
			Title:   n.Title,
			Message: n.Message,
			Date:    parseStoredTime(n.Date),
			Kind:    core.NotificationKind(n.Type),
			Read:    n.Read,
		})
	}

	state = Normalize(state)
	s.logger.InfoContext(ctx, "Loaded wallet state",
		log.FieldBalance, state.Balance,
		log.FieldCount, len(state.Transactions))
	return state, nil
}

func (s *FileStore) Save(ctx context.Context, state core.WalletState) error {
	balance := state.Balance
	w := wireState{
		Balance:       &balance,
		Theme:         string(state.Theme),
		User:          &wireProfile{Name: state.User.Name, Email: state.User.Email, Avatar: state.User.Avatar},
		Transactions:  make([]wireTx, 0, len(state.Transactions)),
		Notifications: make([]wireNote, 0, len(state.Notifications)),
	}
	for _, t := range state.Transactions {
		w.Transactions = append(w.Transactions, wireTx{
			ID:          t.ID,
			Type:        string(t.Type),
			Amount:      t.Amount,
			Category:    t.Category,
			Description: t.Description,
			Date:        t.Date.Format(time.RFC3339Nano),
		})
	}
	for _, n := range state.Notifications {
		w.Notifications = append(w.Notifications, wireNote{
			ID:      n.ID,
			Title:   n.Title,
			Message: n.Message,
			Date:    n.Date.Format(time.RFC3339Nano),
			Type:    string(n.Kind),
			Read:    n.Read,
		})
	}

	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
