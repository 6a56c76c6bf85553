package parse

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every ParseError.
var ErrSyntax = errors.New("syntax error")

// ParseError describes malformed input.
type ParseError struct {
	// Message describes the error.
	Message string

	// Column is the 1-based rune position of the offending character.
	// It points one past the last rune when input ended early.
	Column int

	// Found is the offending character, or empty at end of input.
	Found string

	// Err is the underlying error, if any.
	Err error
}

// Error returns the message with the offending character and column.
func (e *ParseError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("%s at end of input (col %d)", e.Message, e.Column)
	}
	return fmt.Sprintf("%s: unexpected %q (col %d)", e.Message, e.Found, e.Column)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether this error matches the target.
func (e *ParseError) Is(target error) bool {
	return target == ErrSyntax
}
