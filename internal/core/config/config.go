// Package config handles configuration loading and validation for redline.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// Project is the default project name used when commands do not pass
	// one explicitly.
	Project     string            `yaml:"project"`
	Manuscripts ManuscriptsConfig `yaml:"manuscripts"`
	Log         LogConfig         `yaml:"log"`
	DataDir     string            `yaml:"-"` // set by caller, not from config file
}

// ManuscriptsConfig controls manuscript file discovery.
type ManuscriptsConfig struct {
	// Patterns are doublestar globs matched against paths relative to the
	// discovery root.
	Patterns []string `yaml:"patterns"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Project: "default",
		Manuscripts: ManuscriptsConfig{
			Patterns: []string{"**/*.md", "**/*.txt"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the
// provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Project == "" {
		c.Project = defaults.Project
	}
	if len(c.Manuscripts.Patterns) == 0 {
		c.Manuscripts.Patterns = defaults.Manuscripts.Patterns
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	for _, p := range c.Manuscripts.Patterns {
		if p == "" {
			return fmt.Errorf("manuscript pattern cannot be empty")
		}
	}

	return nil
}
