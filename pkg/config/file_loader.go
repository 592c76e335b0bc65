package config

import (
	"encoding/json"
	"os"

	"appswitch/pkg/logger"
)

// fileRepresentation mirrors the JSON layout of the config file.
type fileRepresentation struct {
	WindowManager        string `json:"window_manager"`
	NotifyCommand        string `json:"notify_command"`
	HistoryEnabled       bool   `json:"history_enabled"`
	HistoryRetentionDays int    `json:"history_retention_days"`
}

// LoadFromFile loads the configuration from a JSON file.
func (c *Config) LoadFromFile(path string, log *logger.Logger) error {
	log.Debug("Loading configuration from file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("Failed to read config file", err, "path", path)
		return err
	}
	log.Debug("Config file read successfully", "size_bytes", len(data))

	temp := fileRepresentation{
		WindowManager:        BackendAuto,
		HistoryEnabled:       true,
		HistoryRetentionDays: defaultHistoryRetentionDays,
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		log.Error("Failed to parse config JSON", err)
		return err
	}
	log.Debug("Config JSON parsed successfully")

	// Assign to private fields
	c.windowManager = temp.WindowManager
	c.notifyCommand = temp.NotifyCommand
	c.historyEnabled = temp.HistoryEnabled
	c.historyRetentionDays = temp.HistoryRetentionDays

	return c.validate()
}

// asFileRepresentation converts the config for writing back to disk.
func (c *Config) asFileRepresentation() fileRepresentation {
	return fileRepresentation{
		WindowManager:        c.windowManager,
		NotifyCommand:        c.notifyCommand,
		HistoryEnabled:       c.historyEnabled,
		HistoryRetentionDays: c.historyRetentionDays,
	}
}

// loadConfigFromPath loads the configuration from a file.
func loadConfigFromPath(path string, log *logger.Logger) (*Config, error) {
	config := &Config{log: log}
	if err := config.LoadFromFile(path, log); err != nil {
		return nil, err
	}
	return config, nil
}
