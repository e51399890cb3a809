package store

import (
	"fmt"

	"portafoglio/internal/config"
	"portafoglio/internal/log"
)

// Backend identifies a persistence backend.
type Backend string

const (
	SQLiteBackend Backend = "sqlite"
	FileBackend   Backend = "file"
)

// String implements fmt.Stringer
func (b Backend) String() string {
	return string(b)
}

// IsValid returns true if the backend type is valid
func (b Backend) IsValid() bool {
	switch b {
	case SQLiteBackend, FileBackend:
		return true
	default:
		return false
	}
}

// Open creates the store selected by the application config.
func Open(cfg *config.Config, logger *log.Logger) (Store, error) {
	backend := Backend(cfg.DataBackend)
	if !backend.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch backend {
	case SQLiteBackend:
		s, err := NewSQLiteStore(cfg.SQLiteDBPath, logger)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Info("Initialized SQLite store", log.FieldPath, cfg.SQLiteDBPath)
		return s, nil
	case FileBackend:
		s := NewFileStore(cfg.StateFilePath, logger)
		logger.Info("Initialized file store", log.FieldPath, cfg.StateFilePath)
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", backend)
	}
}
