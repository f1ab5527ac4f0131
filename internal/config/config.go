// Package config loads labpatrol CLI settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration validation.
var (
	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("config: workers cannot be negative")
	// ErrBadLogLevel indicates an unknown log level name.
	ErrBadLogLevel = errors.New("config: unknown log level")
)

// Environment variables that override file values.
const (
	EnvWorkers  = "LABPATROL_WORKERS"
	EnvLogLevel = "LABPATROL_LOG_LEVEL"
)

// Config holds the CLI settings.
type Config struct {
	// Workers bounds parallel obstruction probes; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Exhaustive probes every open cell instead of the visited ones.
	Exhaustive bool `yaml:"exhaustive"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Workers:    0,
		Exhaustive: false,
		LogLevel:   "info",
	}
}

// Load reads configuration from a YAML file on top of Default. A missing
// file yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes c as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w (%d)", ErrBadWorkers, c.Workers)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w %q", ErrBadLogLevel, c.LogLevel)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvWorkers, v, err)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}
