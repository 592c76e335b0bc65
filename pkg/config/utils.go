package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"appswitch/pkg/logger"
)

// initializeConfig creates or loads the configuration.
func initializeConfig(providedPath string, defaultPath string, log *logger.Logger) (*Config, error) {
	var config *Config
	var err error

	// Try provided path first if specified
	if providedPath != "" {
		config, err = loadConfigFromPath(providedPath, log)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from provided path: %w", err)
		}
		return config, nil
	}

	// Try default path, create if doesn't exist
	if _, err := os.Stat(defaultPath); os.IsNotExist(err) {
		config, err = DefaultConfig(log)
		if err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(config.asFileRepresentation(), "", "    ")
		if err != nil {
			return nil, err
		}

		if err := os.WriteFile(defaultPath, data, 0644); err != nil {
			return nil, err
		}
		return config, nil
	}

	config, err = loadConfigFromPath(defaultPath, log)
	if err != nil {
		log.Warn("Falling back to default configuration", "path", defaultPath)
		return DefaultConfig(log)
	}
	return config, nil
}

// FindConfig locates and initializes the configuration.
func FindConfig(providedPath string, log *logger.Logger) (*Config, error) {
	log.Debug("Looking for configuration", "provided_path", providedPath)

	// Get user config directory
	homeConfigDir, err := os.UserConfigDir()
	if err != nil {
		log.Error("Failed to get user config directory", err)
		return nil, err
	}

	// Setup default paths
	defaultConfigDir := filepath.Join(homeConfigDir, "appswitch")
	defaultConfigPath := filepath.Join(defaultConfigDir, "config.json")

	log.Debug("Configuration paths",
		"config_dir", defaultConfigDir,
		"config_path", defaultConfigPath)

	if err := os.MkdirAll(defaultConfigDir, 0755); err != nil {
		log.Error("Failed to create config directory", err, "path", defaultConfigDir)
		return nil, err
	}

	return initializeConfig(providedPath, defaultConfigPath, log)
}
