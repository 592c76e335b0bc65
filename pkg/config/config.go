package config

import (
	"fmt"

	"appswitch/pkg/logger"
)

// Backend names accepted for the window_manager setting.
const (
	BackendAuto     = "auto"
	BackendHyprland = "hyprland"
	BackendX11      = "x11"
	BackendCocoa    = "cocoa"
)

// Config holds the application configuration.
type Config struct {
	// Configurable via JSON file (private fields to enforce immutability)
	windowManager        string
	notifyCommand        string
	historyEnabled       bool
	historyRetentionDays int

	// Internal fields
	log *logger.Logger
}

// New creates a new Config instance with the provided logger.
func New(log *logger.Logger) *Config {
	return &Config{
		log: log,
	}
}

// GetWindowManager returns the configured backend name ("auto" by default).
func (c *Config) GetWindowManager() string {
	return c.windowManager
}

// GetNotifyCommand returns the custom notification command, if any.
func (c *Config) GetNotifyCommand() string {
	return c.notifyCommand
}

// HistoryEnabled reports whether successful switches are recorded.
func (c *Config) HistoryEnabled() bool {
	return c.historyEnabled
}

// HistoryRetentionDays returns how long history entries are kept.
func (c *Config) HistoryRetentionDays() int {
	return c.historyRetentionDays
}

// validate checks field values after loading.
func (c *Config) validate() error {
	switch c.windowManager {
	case BackendAuto, BackendHyprland, BackendX11, BackendCocoa:
	default:
		return fmt.Errorf("unknown window_manager %q (expected auto, hyprland, x11 or cocoa)", c.windowManager)
	}
	if c.historyRetentionDays < 0 {
		return fmt.Errorf("history_retention_days must not be negative, got %d", c.historyRetentionDays)
	}
	return nil
}
