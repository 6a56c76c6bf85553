package callable

import (
	"errors"
	"fmt"
)

// Sentinel errors for descriptor construction and invocation.
var (
	// ErrNotFunc indicates the wrapped value is not a function.
	ErrNotFunc = errors.New("callable: not a function")

	// ErrNoReceiver indicates a receiver descriptor was built over a function
	// with no parameters, or invoked without a usable target.
	ErrNoReceiver = errors.New("callable: receiver unavailable")

	// ErrArity indicates the bound argument count differs from ParamCount.
	ErrArity = errors.New("callable: wrong number of arguments")

	// ErrInvocation is matched by every TargetInvocationError.
	ErrInvocation = errors.New("target invocation failed")
)

// TargetInvocationError wraps a failure raised by user code: a returned
// non-nil error or a recovered panic.
type TargetInvocationError struct {
	// Callable is the name of the invoked descriptor.
	Callable string

	// Err is the error returned by the callable, or the recovered panic.
	Err error

	// Stack is the goroutine stack captured when the callable panicked.
	// Nil for returned errors.
	Stack []byte
}

// Error returns the callable name and the underlying cause.
func (e *TargetInvocationError) Error() string {
	return fmt.Sprintf("invoke %s: %v", e.Callable, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TargetInvocationError) Unwrap() error {
	return e.Err
}

// Is reports whether this error matches the target.
func (e *TargetInvocationError) Is(target error) bool {
	return target == ErrInvocation
}

// Panicked reports whether the callable panicked rather than returning an error.
func (e *TargetInvocationError) Panicked() bool {
	return e.Stack != nil
}
