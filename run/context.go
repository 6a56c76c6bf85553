package run

import (
	"fmt"
	"reflect"

	"github.com/jonwraymond/lcdebug/callable"
	"github.com/jonwraymond/lcdebug/match"
	"github.com/jonwraymond/lcdebug/value"
)

// ExecutionContext carries one line through the stages. It is created per
// line and discarded when the line completes.
type ExecutionContext struct {
	// Target is the session target.
	Target Target

	// Candidates are the callables the match stage chooses from.
	Candidates []*callable.Descriptor

	// Line is the raw input text.
	Line string

	// Args are the parsed arguments, set by the parse stage.
	Args []value.Value

	// Chosen and Bound are filled by the match stage.
	Chosen *callable.Descriptor
	Bound  []reflect.Value

	stack []any
}

func newExecutionContext(target Target, candidates []*callable.Descriptor, line string) *ExecutionContext {
	return &ExecutionContext{
		Target:     target,
		Candidates: candidates,
		Line:       line,
		stack:      []any{line},
	}
}

// Push places a stage output on the stack.
func (ec *ExecutionContext) Push(v any) {
	ec.stack = append(ec.stack, v)
}

// Pop removes the most recent stage output.
func (ec *ExecutionContext) Pop() (any, error) {
	if len(ec.stack) == 0 {
		return nil, ErrStack
	}
	v := ec.stack[len(ec.stack)-1]
	ec.stack = ec.stack[:len(ec.stack)-1]
	return v, nil
}

// Choose records the matcher's winner.
func (ec *ExecutionContext) Choose(b match.Binding) {
	ec.Chosen = b.Callable
	ec.Bound = b.Args
}

func popAs[T any](ec *ExecutionContext) (T, error) {
	var zero T
	v, err := ec.Pop()
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: have %T, want %T", ErrStack, v, zero)
	}
	return t, nil
}
