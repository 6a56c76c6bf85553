package exec

import (
	"time"

	"github.com/jonwraymond/lcdebug/value"
)

// Result represents the outcome of a single line.
type Result struct {
	// Output is the printed result line.
	Output string

	// Value is the native return value. Nil for void callables.
	Value any

	// Callable is the signature of the chosen callable.
	Callable string

	// Args are the parsed arguments of the line.
	Args []value.Value

	// Duration is how long the line took end to end.
	Duration time.Duration

	// Error is non-nil if the line failed.
	Error error
}

// OK returns true if the result has no error.
func (r Result) OK() bool {
	return r.Error == nil
}

// StepResult represents the outcome of a single operation in a design
// sequence.
type StepResult struct {
	// StepIndex is the zero-based index of this operation.
	StepIndex int

	// Operation is the operation name as written in the input.
	Operation string

	// Callable is the signature of the constructor or method that ran.
	Callable string

	// Args are the arguments passed to this operation.
	Args []value.Value

	// Value is the native return value. Nil for void operations.
	Value any

	// Duration is how long this operation took.
	Duration time.Duration

	// Error is non-nil if this operation failed.
	Error error

	// Skipped is true if this operation did not run due to a prior failure.
	Skipped bool
}

// OK returns true if the step completed successfully.
func (s StepResult) OK() bool {
	return s.Error == nil && !s.Skipped
}

// Summary describes a finished session.
type Summary struct {
	// SessionID identifies the session in logs.
	SessionID string

	// Lines is the number of argument lines processed.
	Lines int

	// Failed counts lines that produced an error.
	Failed int

	// Duration is the wall time of the session.
	Duration time.Duration
}
