// Package config loads lcdebug CLI configuration from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jonwraymond/lcdebug/backend"
)

// Environment variables that override the file.
const (
	EnvLogLevel  = "LCDEBUG_LOG_LEVEL"
	EnvLogFormat = "LCDEBUG_LOG_FORMAT"
	EnvInput     = "LCDEBUG_INPUT"
	EnvOutput    = "LCDEBUG_OUTPUT"
	EnvKeepGoing = "LCDEBUG_KEEP_GOING"
)

// Config holds all lcdebug configuration.
type Config struct {
	// Where argument lines come from.
	Input IOConfig `yaml:"input"`

	// Where result lines go.
	Output IOConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Session behavior
	Session SessionConfig `yaml:"session"`
}

// IOConfig selects a backend kind and its target.
type IOConfig struct {
	Kind string `yaml:"kind"` // console, file
	Path string `yaml:"path,omitempty"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// SessionConfig configures a debugging session.
type SessionConfig struct {
	KeepGoing      bool   `yaml:"keep_going"`
	NormalizeWidth bool   `yaml:"normalize_width"`
	LoadTimeout    string `yaml:"load_timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input:  IOConfig{Kind: "console"},
		Output: IOConfig{Kind: "console"},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Session: SessionConfig{
			LoadTimeout: "10s",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		c.Logging.Format = format
	}
	if loc := os.Getenv(EnvInput); loc != "" {
		io, err := ParseIO(loc)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvInput, err)
		}
		c.Input = io
	}
	if loc := os.Getenv(EnvOutput); loc != "" {
		io, err := ParseIO(loc)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvOutput, err)
		}
		c.Output = io
	}
	if v := os.Getenv(EnvKeepGoing); v != "" {
		keep, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvKeepGoing, err)
		}
		c.Session.KeepGoing = keep
	}
	return nil
}

// ParseIO reads a backend locator such as "console" or "file:cases.txt".
func ParseIO(locator string) (IOConfig, error) {
	kind, target, err := backend.ParseLocator(locator)
	if err != nil {
		return IOConfig{}, err
	}
	return IOConfig{Kind: kind, Path: target}, nil
}

// Locator returns the backend locator for this IO.
func (c IOConfig) Locator() string {
	return backend.FormatLocator(c.Kind, c.Path)
}

// GetLoadTimeout returns the solution load timeout as a duration.
func (c *Config) GetLoadTimeout() time.Duration {
	d, err := time.ParseDuration(c.Session.LoadTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// Valid option values.
var (
	ValidIOKinds    = []string{"console", "file"}
	ValidLogLevels  = []string{"debug", "info", "warn", "error"}
	ValidLogFormats = []string{"json", "text"}
)

// Validate validates the configuration.
func (c *Config) Validate() error {
	for name, io := range map[string]IOConfig{"input": c.Input, "output": c.Output} {
		if !slices.Contains(ValidIOKinds, io.Kind) {
			return fmt.Errorf("invalid %s kind: %q (valid: %v)", name, io.Kind, ValidIOKinds)
		}
		if io.Kind == "file" && io.Path == "" {
			return fmt.Errorf("%s kind file requires a path", name)
		}
	}
	if !slices.Contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if !slices.Contains(ValidLogFormats, c.Logging.Format) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Logging.Format, ValidLogFormats)
	}
	if c.Session.LoadTimeout != "" {
		if d, err := time.ParseDuration(c.Session.LoadTimeout); err != nil || d < 0 {
			return fmt.Errorf("invalid load timeout: %q", c.Session.LoadTimeout)
		}
	}
	return nil
}
