package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Store     StoreConfig
	Logging   LogConfig
	Launch    LaunchConfig
	Icons     IconConfig
	Discovery DiscoveryConfig
}

// StoreConfig holds profile store configuration.
type StoreConfig struct {
	// Path overrides the default config.json location.
	Path string `envconfig:"CONFIG_PATH" default:""`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
	File        string `envconfig:"LOG_FILE" default:""`
}

// LaunchConfig holds launch orchestration configuration.
type LaunchConfig struct {
	// DelayMS is the default pause between launches in a batch.
	DelayMS int `envconfig:"LAUNCH_DELAY_MS" default:"0"`
}

// IconConfig holds icon extraction configuration.
type IconConfig struct {
	Size            int `envconfig:"ICON_SIZE" default:"32"`
	PrefetchWorkers int `envconfig:"ICON_PREFETCH_WORKERS" default:"4"`
}

// DiscoveryConfig holds installed-application scan configuration.
type DiscoveryConfig struct {
	MaxDepth int      `envconfig:"SCAN_DEPTH" default:"2"`
	Exclude  []string `envconfig:"SCAN_EXCLUDE" default:""`
	VerifyPE bool     `envconfig:"SCAN_VERIFY_PE" default:"false"`
}

// Load loads configuration from FAVAPP_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("favapp", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Launch: LaunchConfig{
			DelayMS: 0,
		},
		Icons: IconConfig{
			Size:            32,
			PrefetchWorkers: 4,
		},
		Discovery: DiscoveryConfig{
			MaxDepth: 2,
		},
	}
}
