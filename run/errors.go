package run

import "errors"

// Errors returned by the runner.
var (
	// ErrStack indicates a stage found no usable input on the execution stack.
	ErrStack = errors.New("run: execution stack underflow")

	// ErrNotChosen indicates the stages finished without choosing a callable.
	ErrNotChosen = errors.New("run: no callable chosen")

	// ErrDesign indicates a malformed data-structure-design line.
	ErrDesign = errors.New("run: invalid design input")

	// ErrUnknownOperation indicates a design operation with no callable.
	ErrUnknownOperation = errors.New("run: unknown operation")
)
