package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Persistence
	DataBackend   string // "sqlite" or "file"
	SQLiteDBPath  string
	StateFilePath string

	// Receipt scanning (optional; scanning is disabled without a key)
	OpenAIAPIKey string
	OpenAIModel  string
	ScanTimeout  time.Duration

	// Logging
	LogLevel string
	LogFile  string
}

func Load() *Config {
	return &Config{
		DataBackend:   getEnv("DATA_BACKEND", "sqlite"),
		SQLiteDBPath:  getEnv("SQLITE_DB_PATH", "./data/wallet.db"),
		StateFilePath: getEnv("STATE_FILE_PATH", "./data/wallet_state.json"),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		ScanTimeout:  getEnvDuration("SCAN_TIMEOUT", 30*time.Second),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	switch c.DataBackend {
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	case "file":
		if c.StateFilePath == "" {
			errors = append(errors, "state file path cannot be empty when using file backend")
		} else if dir := filepath.Dir(c.StateFilePath); dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create state directory '%s': %v", dir, err))
				}
			}
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of [sqlite file]", c.DataBackend))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if c.ScanTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid scan timeout %v: must be at least 1 second", c.ScanTimeout))
	} else if c.ScanTimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid scan timeout %v: must be at most 5 minutes", c.ScanTimeout))
	}

	if c.OpenAIAPIKey != "" && c.OpenAIModel == "" {
		errors = append(errors, "OpenAI model cannot be empty when an API key is configured")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// ScanEnabled reports whether a receipt scanner can be constructed.
func (c *Config) ScanEnabled() bool {
	return c.OpenAIAPIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
