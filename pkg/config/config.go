package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for minigrep. It tunes I/O limits only;
// matching behavior is fixed by the pattern argument.
type Config struct {
	// MaxLineBytes caps the length of a single input line.
	MaxLineBytes int `yaml:"max_line_bytes" env:"MINIGREP_MAX_LINE_BYTES"`

	// MatchTimeout caps a single match attempt. Zero disables the cap.
	MatchTimeout time.Duration `yaml:"match_timeout" env:"MINIGREP_MATCH_TIMEOUT"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxLineBytes: 1024 * 1024,
		MatchTimeout: 0,
	}
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	configPath := getConfigPath()
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check for explicit config path
	if path := os.Getenv("MINIGREP_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "minigrep", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "minigrep", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if maxLine := os.Getenv("MINIGREP_MAX_LINE_BYTES"); maxLine != "" {
		n, err := strconv.Atoi(maxLine)
		if err != nil {
			return fmt.Errorf("invalid MINIGREP_MAX_LINE_BYTES: %w", err)
		}
		cfg.MaxLineBytes = n
	}

	if timeout := os.Getenv("MINIGREP_MATCH_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid MINIGREP_MATCH_TIMEOUT: %w", err)
		}
		cfg.MatchTimeout = d
	}

	return nil
}

// validate validates the configuration
func validate(cfg *Config) error {
	if cfg.MaxLineBytes <= 0 {
		return fmt.Errorf("max_line_bytes must be positive")
	}

	if cfg.MatchTimeout < 0 {
		return fmt.Errorf("match_timeout must be non-negative")
	}

	return nil
}
