package code

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Sentinel errors for error classification.
var (
	// ErrCodeExecution indicates an error while evaluating a solution, such
	// as a syntax error, an undefined name, or a panic in package init.
	ErrCodeExecution = errors.New("code execution error")

	// ErrConfiguration indicates an invalid or incomplete configuration.
	ErrConfiguration = errors.New("configuration error")

	// ErrLimitExceeded indicates that evaluation hit the load timeout.
	ErrLimitExceeded = errors.New("limit exceeded")

	// ErrNoCallables indicates a source with no usable function or design.
	ErrNoCallables = errors.New("no callable functions or designs")
)

// CodeError represents an error that occurred while loading a solution.
// It includes optional source location information for debugging.
type CodeError struct {
	// Path is the source file name, if known.
	Path string

	// Message describes the error.
	Message string

	// Line is the 1-based line number where the error occurred.
	// Zero indicates the line is unknown.
	Line int

	// Column is the 1-based column number where the error occurred.
	// Zero indicates the column is unknown.
	Column int

	// Err is the underlying error, if any.
	Err error
}

// Error returns the error message, including line and column if available.
func (e *CodeError) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d, col %d)", e.Message, e.Line, e.Column)
	}
	if e.Path != "" {
		return e.Path + ": " + msg
	}
	return msg
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *CodeError) Unwrap() error {
	return e.Err
}

// Is reports whether this error matches the target.
// CodeError matches ErrCodeExecution to allow sentinel-style error checking.
func (e *CodeError) Is(target error) bool {
	return target == ErrCodeExecution
}

// positioned matches interpreter messages of the form "file:line:col: msg".
var positioned = regexp.MustCompile(`^(?:.*?:)?(\d+):(\d+): (.+)$`)

// evalError converts an interpreter error into a *CodeError, recovering the
// position from the message when it carries one.
func evalError(path string, err error) *CodeError {
	ce := &CodeError{Path: path, Message: err.Error(), Err: err}
	if m := positioned.FindStringSubmatch(err.Error()); m != nil {
		ce.Line, _ = strconv.Atoi(m[1])
		ce.Column, _ = strconv.Atoi(m[2])
		ce.Message = m[3]
	}
	return ce
}
