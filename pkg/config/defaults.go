package config

import (
	"fmt"

	"appswitch/pkg/logger"
)

const defaultHistoryRetentionDays = 30

// DefaultConfig creates a default configuration.
func DefaultConfig(log *logger.Logger) (*Config, error) {
	log.Debug("Creating default configuration")

	config := &Config{
		windowManager:        BackendAuto,
		notifyCommand:        "",
		historyEnabled:       true,
		historyRetentionDays: defaultHistoryRetentionDays,
		log:                  log,
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("failed to build default config: %w", err)
	}

	log.Info("Created default configuration",
		"window_manager", config.windowManager,
		"history_enabled", config.historyEnabled,
		"history_retention_days", config.historyRetentionDays)

	return config, nil
}
