// Package config manages application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration for transcript retrieval.
type Config struct {
	// OutputDir is the directory transcript JSON files are written to.
	OutputDir string `json:"output_dir"`
	// Language is the preferred transcript language code.
	Language string `json:"language"`
	// APIKey enables caption listing through the YouTube Data API when set.
	APIKey string `json:"api_key"`
	// UserAgent is sent on requests against YouTube.
	UserAgent string `json:"user_agent"`

	// HTTPTimeout is the maximum time for a single YouTube request.
	HTTPTimeout time.Duration `json:"http_timeout"`
	// RequestsPerSecond caps the request rate per YouTube domain.
	RequestsPerSecond float64 `json:"requests_per_second"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:         "Transcripts",
		Language:          "en",
		UserAgent:         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		HTTPTimeout:       30 * time.Second,
		RequestsPerSecond: 2.5,
		LogLevel:          "info",
	}
}

// Load loads configuration from environment variables, config file, and
// applies defaults. Priority: env vars > config file > defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := cfg.loadFromFile(); err != nil {
		// Config file is optional
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile attempts to load config from ytscribe.json in the current
// directory or the user config directory.
func (c *Config) loadFromFile() error {
	paths := []string{
		"ytscribe.json",
		filepath.Join(os.Getenv("HOME"), ".config", "ytscribe", "ytscribe.json"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("YTSCRIBE_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("YTSCRIBE_LANGUAGE"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("YTSCRIBE_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("YTSCRIBE_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
	if v := os.Getenv("YTSCRIBE_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.HTTPTimeout = d
		}
	}
	if v := os.Getenv("YTSCRIBE_REQUESTS_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RequestsPerSecond = f
		}
	}
	if v := os.Getenv("YTSCRIBE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks that configuration values are valid and consistent.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.Language == "" {
		return fmt.Errorf("language must not be empty")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive")
	}
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error")
	}
	return nil
}

// SlogLevel maps the configured log level onto a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
