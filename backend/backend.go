package backend

import (
	"errors"
	"strings"
)

// Common errors for backend operations.
var (
	ErrBackendNotFound = errors.New("backend not found")
	ErrBackendExists   = errors.New("backend already registered")
	ErrInvalidLocator  = errors.New("invalid backend locator")
	ErrClosed          = errors.New("backend closed")
)

// InputProvider supplies input lines.
//
// Contract:
// - NextLine returns io.EOF once input is exhausted.
// - IsEnd reports whether a line ends the session; the default is a blank line.
// - Close releases the underlying resource and is safe to call more than once.
type InputProvider interface {
	// NextLine returns the next line without its line terminator.
	NextLine() (string, error)

	// IsEnd reports whether line is the session-ending sentinel.
	IsEnd(line string) bool

	// Close releases the input.
	Close() error
}

// OutputConsumer receives output lines.
//
// Contract:
// - ConsumeLine writes exactly one line and makes it visible before returning.
// - After Close, ConsumeLine returns ErrClosed.
type OutputConsumer interface {
	// ConsumeLine writes one line.
	ConsumeLine(line string) error

	// Close flushes and releases the output.
	Close() error
}

// InputFactory opens an input for a kind-specific target.
type InputFactory func(target string) (InputProvider, error)

// OutputFactory opens an output for a kind-specific target.
type OutputFactory func(target string) (OutputConsumer, error)

// Info describes a registered kind.
type Info struct {
	Kind        string
	Description string
	Input       bool
	Output      bool
}

// IsBlank is the default end-of-session test: an empty or whitespace-only line.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
