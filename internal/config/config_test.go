package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.DataBackend != "sqlite" {
		t.Errorf("DataBackend = %q, want sqlite", cfg.DataBackend)
	}
	if cfg.SQLiteDBPath != "./data/wallet.db" {
		t.Errorf("SQLiteDBPath = %q", cfg.SQLiteDBPath)
	}
	if cfg.StateFilePath != "./data/wallet_state.json" {
		t.Errorf("StateFilePath = %q", cfg.StateFilePath)
	}
	if cfg.ScanTimeout != 30*time.Second {
		t.Errorf("ScanTimeout = %v, want 30s", cfg.ScanTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.ScanEnabled() {
		t.Error("scanning must be disabled without an API key")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATA_BACKEND", "file")
	t.Setenv("STATE_FILE_PATH", "/tmp/w.json")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SCAN_TIMEOUT", "45s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.DataBackend != "file" || cfg.StateFilePath != "/tmp/w.json" {
		t.Errorf("backend config not read from env: %+v", cfg)
	}
	if !cfg.ScanEnabled() {
		t.Error("scanning should be enabled with an API key")
	}
	if cfg.ScanTimeout != 45*time.Second {
		t.Errorf("ScanTimeout = %v, want 45s", cfg.ScanTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := Load()
		cfg.SQLiteDBPath = t.TempDir() + "/wallet.db"
		cfg.StateFilePath = t.TempDir() + "/wallet_state.json"
		return cfg
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cases := []struct {
		name     string
		mutate   func(*Config)
		fragment string
	}{
		{"bad backend", func(c *Config) { c.DataBackend = "redis" }, "invalid data backend"},
		{"empty sqlite path", func(c *Config) { c.SQLiteDBPath = "" }, "database path cannot be empty"},
		{"empty state path", func(c *Config) { c.DataBackend = "file"; c.StateFilePath = "" }, "state file path cannot be empty"},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "invalid log level"},
		{"scan timeout too short", func(c *Config) { c.ScanTimeout = 100 * time.Millisecond }, "at least 1 second"},
		{"scan timeout too long", func(c *Config) { c.ScanTimeout = time.Hour }, "at most 5 minutes"},
		{"key without model", func(c *Config) { c.OpenAIAPIKey = "sk-x"; c.OpenAIModel = "" }, "model cannot be empty"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.fragment) {
				t.Fatalf("error %q does not mention %q", err, tc.fragment)
			}
		})
	}
}
