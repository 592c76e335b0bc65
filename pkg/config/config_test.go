package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"appswitch/pkg/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(
		logger.WithFile(filepath.Join(t.TempDir(), "test.log")),
		logger.WithLevel(zerolog.Disabled),
	)
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	t.Cleanup(func() { log.Close() })
	return log
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := DefaultConfig(newTestLogger(t))
	if err != nil {
		t.Fatalf("DefaultConfig failed: %v", err)
	}
	if got := cfg.GetWindowManager(); got != BackendAuto {
		t.Errorf("window manager = %q, want %q", got, BackendAuto)
	}
	if !cfg.HistoryEnabled() {
		t.Error("history should be enabled by default")
	}
	if got := cfg.HistoryRetentionDays(); got != defaultHistoryRetentionDays {
		t.Errorf("retention days = %d, want %d", got, defaultHistoryRetentionDays)
	}
	if got := cfg.GetNotifyCommand(); got != "" {
		t.Errorf("notify command = %q, want empty", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	log := newTestLogger(t)
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"window_manager": "hyprland",
		"notify_command": "my-notify",
		"history_enabled": false,
		"history_retention_days": 7
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := New(log)
	if err := cfg.LoadFromFile(path, log); err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if got := cfg.GetWindowManager(); got != BackendHyprland {
		t.Errorf("window manager = %q, want %q", got, BackendHyprland)
	}
	if got := cfg.GetNotifyCommand(); got != "my-notify" {
		t.Errorf("notify command = %q, want my-notify", got)
	}
	if cfg.HistoryEnabled() {
		t.Error("history should be disabled")
	}
	if got := cfg.HistoryRetentionDays(); got != 7 {
		t.Errorf("retention days = %d, want 7", got)
	}
}

func TestLoadFromFile_unknownBackend(t *testing.T) {
	log := newTestLogger(t)
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"window_manager": "aqua"}`), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := New(log)
	if err := cfg.LoadFromFile(path, log); err == nil {
		t.Error("unknown window_manager should be rejected")
	}
}

func TestLoadFromFile_missingFile(t *testing.T) {
	log := newTestLogger(t)
	cfg := New(log)
	if err := cfg.LoadFromFile(filepath.Join(t.TempDir(), "missing.json"), log); err == nil {
		t.Error("missing file should return an error")
	}
}

func TestLoadFromFile_negativeRetention(t *testing.T) {
	log := newTestLogger(t)
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"history_retention_days": -1}`), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := New(log)
	if err := cfg.LoadFromFile(path, log); err == nil {
		t.Error("negative retention should be rejected")
	}
}
