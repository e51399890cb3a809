// Package cli provides common initialization for the binaries in cmd/.
// It consolidates the env-file, logging, config and store bootstrap so
// cmd/wallet and cmd/wallet-export stay thin.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"portafoglio/internal/config"
	"portafoglio/internal/log"
	"portafoglio/internal/scan"
	"portafoglio/internal/store"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the process logger from config. When LOG_FILE is
// set, records go there; otherwise they go to stderr so the terminal UI
// keeps stdout. The returned closer is nil when no file was opened.
func SetupLogger(cfg *config.Config) (*log.Logger, io.Closer) {
	level := parseLevel(cfg.LogLevel)

	var w io.Writer = os.Stderr
	var closer io.Closer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			w = f
			closer = f
		}
	}

	logger := log.NewAt(w, level, log.ComponentApp)
	log.SetDefault(logger)
	return logger, closer
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// OpenStore opens the configured persistence backend.
// Returns the store or exits the process on failure.
func OpenStore(cfg *config.Config, logger *log.Logger) store.Store {
	st, err := store.Open(cfg, logger)
	if err != nil {
		logger.Error("Failed to open store", log.FieldError, err, log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	return st
}

// BuildScanService wires the receipt scanner when an API key is
// configured. Returns nil otherwise; callers treat nil as "scanning
// off".
func BuildScanService(cfg *config.Config, logger *log.Logger) *scan.Service {
	if !cfg.ScanEnabled() {
		logger.Info("Receipt scanning disabled, no API key configured")
		return nil
	}
	scanner := scan.NewOpenAIScanner(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	return scan.NewService(scanner, cfg.ScanTimeout, logger)
}
