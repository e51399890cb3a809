package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"portafoglio/internal/core"
	"portafoglio/internal/log"
)

// SQLiteStore keeps the snapshot in three tables: a single wallet row
// (balance, theme, profile) plus transactions and notifications with an
// explicit position column preserving most-recent-first order. Save
// rewrites the snapshot inside one transaction so a reader never sees a
// partial state.
type SQLiteStore struct {
	db     *sql.DB
	logger *log.Logger
}

func NewSQLiteStore(dbPath string, logger *log.Logger) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.WithComponent(log.ComponentStore),
	}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (core.WalletState, error) {
	state := core.NewWalletState()

	var (
		balance sql.NullFloat64
		theme   sql.NullString
		name    sql.NullString
		email   sql.NullString
		avatar  sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT balance, theme, user_name, user_email, user_avatar FROM wallet WHERE id = 1`,
	).Scan(&balance, &theme, &name, &email, &avatar)
	switch {
	case err == sql.ErrNoRows:
		// Nothing persisted yet; start from the clean slate.
		return state, nil
	case err != nil:
		return state, fmt.Errorf("load wallet row: %w", err)
	}

	if balance.Valid {
		state.Balance = balance.Float64
	}
	state.Theme = core.Theme(theme.String)
	state.User = core.UserProfile{
		Name:   name.String,
		Email:  email.String,
		Avatar: avatar.String,
	}

	txs, err := s.loadTransactions(ctx)
	if err != nil {
		return state, err
	}
	state.Transactions = txs

	notes, err := s.loadNotifications(ctx)
	if err != nil {
		return state, err
	}
	state.Notifications = notes

	state = Normalize(state)
	s.logger.InfoContext(ctx, "Loaded wallet state",
		log.FieldBalance, state.Balance,
		log.FieldCount, len(state.Transactions))
	return state, nil
}

func (s *SQLiteStore) loadTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, type, amount, category, description, date
		 FROM transactions ORDER BY position ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	defer rows.Close()

	out := []core.Transaction{}
	for rows.Next() {
		var tx core.Transaction
		var date string
		if err := rows.Scan(&tx.ID, &tx.Type, &tx.Amount, &tx.Category, &tx.Description, &date); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Date = parseStoredTime(date)
		out = append(out, tx)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) loadNotifications(ctx context.Context) ([]core.NotificationRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, message, date, kind, read
		 FROM notifications ORDER BY position ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	defer rows.Close()

	out := []core.NotificationRecord{}
	for rows.Next() {
		var n core.NotificationRecord
		var date string
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &date, &n.Kind, &n.Read); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.Date = parseStoredTime(date)
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Save(ctx context.Context, state core.WalletState) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO wallet (id, balance, theme, user_name, user_email, user_avatar)
		 VALUES (1, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   balance = excluded.balance,
		   theme = excluded.theme,
		   user_name = excluded.user_name,
		   user_email = excluded.user_email,
		   user_avatar = excluded.user_avatar`,
		state.Balance, string(state.Theme), state.User.Name, state.User.Email, state.User.Avatar,
	)
	if err != nil {
		return fmt.Errorf("save wallet row: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	for i, t := range state.Transactions {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO transactions (position, id, type, amount, category, description, date)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, t.ID, string(t.Type), t.Amount, t.Category, t.Description, t.Date.Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("save transaction %s: %w", t.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM notifications`); err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}
	for i, n := range state.Notifications {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO notifications (position, id, title, message, date, kind, read)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, n.ID, n.Title, n.Message, n.Date.Format(time.RFC3339Nano), string(n.Kind), n.Read,
		)
		if err != nil {
			return fmt.Errorf("save notification %s: %w", n.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// parseStoredTime tolerates malformed stored dates; a transaction with an
// unreadable date keeps a zero timestamp rather than poisoning the load.
func parseStoredTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
