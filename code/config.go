package code

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultFilename names inline sources in messages.
const DefaultFilename = "solution.go"

// Config holds the configuration for loading a solution.
type Config struct {
	// Path is the solution file to load.
	// One of Path or Source is required.
	Path string

	// Source is inline solution text, used instead of Path.
	Source string

	// Engine evaluates the rewritten source.
	// Default: a YaegiEngine writing to Stdout.
	Engine Engine

	// Stdout receives anything the solution prints. It defaults to standard
	// error so solution debug prints never mix with result lines.
	Stdout io.Writer

	// Timeout bounds evaluation of the source, including package init.
	// If zero, no timeout is applied.
	Timeout time.Duration

	// Logger is an optional logger for observability.
	Logger *zap.Logger
}

// Validate checks that all required fields are set.
// Returns ErrConfiguration if any required field is missing.
func (c *Config) Validate() error {
	var missing []string
	var invalid []string

	if c.Path == "" && c.Source == "" {
		missing = append(missing, "Path or Source")
	}
	if c.Path != "" && c.Source != "" {
		invalid = append(invalid, "Path and Source are mutually exclusive")
	}
	if c.Timeout < 0 {
		invalid = append(invalid, "Timeout must not be negative")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s",
			ErrConfiguration, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(invalid, "; "))
	}
	return nil
}

// applyDefaults sets default values for optional fields.
func (c *Config) applyDefaults() {
	if c.Stdout == nil {
		c.Stdout = os.Stderr
	}
	if c.Engine == nil {
		c.Engine = NewYaegiEngine(c.Stdout)
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

// read returns the source text and the name used in messages.
func (c *Config) read() (name string, src []byte, err error) {
	if c.Source != "" {
		return DefaultFilename, []byte(c.Source), nil
	}
	src, err = os.ReadFile(c.Path)
	if err != nil {
		return "", nil, fmt.Errorf("%w: read source: %v", ErrConfiguration, err)
	}
	return filepath.Base(c.Path), src, nil
}
