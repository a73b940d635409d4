// Package config provides configuration management for the simulation driver.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Default configuration values.
const (
	DefaultLogLevel       = "info"
	DefaultDays           = 2
	DefaultMetricsEnabled = true
)

// Environment variable names.
const (
	EnvLogLevel       = "APP_LOG_LEVEL"
	EnvDays           = "APP_SIMULATION_DAYS"
	EnvMetricsEnabled = "APP_METRICS_ENABLED"
)

// Config holds the application configuration.
type Config struct {
	LogLevel string

	// Days is the number of updates the driver applies.
	Days int

	MetricsEnabled bool
}

// Validation errors.
var (
	ErrInvalidLogLevel = errors.New("log level must be one of: debug, info, warn, error")
	ErrInvalidDays     = errors.New("simulation days must not be negative")
)

// Load reads configuration from environment variables with defaults.
// Environment variables have priority over default values.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:       DefaultLogLevel,
		Days:           DefaultDays,
		MetricsEnabled: DefaultMetricsEnabled,
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadFromEnv loads configuration values from environment variables.
func (c *Config) loadFromEnv() error {
	if val := os.Getenv(EnvLogLevel); val != "" {
		c.LogLevel = val
	}

	if val := os.Getenv(EnvDays); val != "" {
		days, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvDays, err)
		}
		c.Days = days
	}

	if val := os.Getenv(EnvMetricsEnabled); val != "" {
		enabled, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvMetricsEnabled, err)
		}
		c.MetricsEnabled = enabled
	}

	return nil
}

// OverrideDays replaces Days with a positional command-line argument.
// An empty argument leaves the configured value untouched.
func (c *Config) OverrideDays(arg string) error {
	if arg == "" {
		return nil
	}

	days, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("parsing days argument %q: %w", arg, err)
	}
	if days < 0 {
		return ErrInvalidDays
	}

	c.Days = days
	return nil
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return ErrInvalidLogLevel
	}

	if c.Days < 0 {
		return ErrInvalidDays
	}

	return nil
}
