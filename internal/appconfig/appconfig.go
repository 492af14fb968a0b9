// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting launcher configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the launcher's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the path to the configuration file used in previous versions.
	legacyConfigPath = "config.json"
	// defaultRecipesDir is the directory searched for bare recipe names.
	defaultRecipesDir = "recipes"
	// defaultWaitTimeout bounds the whole readiness wait.
	defaultWaitTimeout = 300 * time.Second
	// defaultPollInterval separates consecutive readiness probes.
	defaultPollInterval = 2 * time.Second
	// defaultRequestTimeout bounds a single /models request.
	defaultRequestTimeout = 5 * time.Second
)

// Config represents the top-level launcher configuration.
type Config struct {
	RecipesDir            string `json:"recipesDir,omitempty"`
	Debug                 bool   `json:"debug"`
	Warmup                bool   `json:"warmup"`
	WaitTimeoutSeconds    int    `json:"waitTimeout,omitempty" mapstructure:"waitTimeout"`
	WaitIntervalSeconds   int    `json:"waitInterval,omitempty" mapstructure:"waitInterval"`
	RequestTimeoutSeconds int    `json:"requestTimeout,omitempty" mapstructure:"requestTimeout"`
	LogFile               string `json:"logFile,omitempty"`
	ConfigPath            string `json:"-"`
}

// RecipesDirPath returns the directory searched for bare recipe names.
func (c Config) RecipesDirPath() string {
	if dir := strings.TrimSpace(c.RecipesDir); dir != "" {
		return dir
	}
	return defaultRecipesDir
}

// WaitTimeout returns the overall readiness deadline, falling back to the default if not specified.
func (c Config) WaitTimeout() time.Duration {
	if c.WaitTimeoutSeconds <= 0 {
		return defaultWaitTimeout
	}
	return time.Duration(c.WaitTimeoutSeconds) * time.Second
}

// PollInterval returns the sleep between readiness probes.
func (c Config) PollInterval() time.Duration {
	if c.WaitIntervalSeconds <= 0 {
		return defaultPollInterval
	}
	return time.Duration(c.WaitIntervalSeconds) * time.Second
}

// RequestTimeout returns the timeout applied to each individual endpoint request.
func (c Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// LogFilePath returns the path to the launcher log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "balbis.log"
}

// Load reads the launcher configuration from the specified path, with
// fallback to a legacy path. A missing file at the default path is not an
// error: the launcher runs fine on defaults alone.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				config.ConfigPath = legacyConfigPath
				return config, nil
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, nil
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}

	return config, nil
}
