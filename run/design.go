package run

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"

	"github.com/jonwraymond/lcdebug/callable"
	"github.com/jonwraymond/lcdebug/value"
)

const designHandlerName = "design"

// StepResult is the outcome of one operation of a design line.
type StepResult struct {
	// Index is the zero-based operation index.
	Index int

	// Operation is the operation name as written in the input.
	Operation string

	// Callable is the descriptor that ran; nil when resolution failed.
	Callable *callable.Descriptor

	// Args are the operation's arguments.
	Args []value.Value

	// Value is the native result; nil for the constructor and void methods.
	Value any

	// Duration covers matching and invocation of this operation.
	Duration time.Duration

	// Error is non-nil if the operation failed.
	Error error
}

// OK returns true if the step completed successfully.
func (s StepResult) OK() bool {
	return s.Error == nil
}

// designHandler drives one design line. It is created per line and used as
// the receiver of the runner's design descriptor.
type designHandler struct {
	runner *Runner
	design *Design
	ctx    context.Context
	steps  []StepResult
}

// Run applies operations in order to one shared instance. The constructor's
// result is reported as nil.
func (h *designHandler) Run(operations []string, data value.Value) ([]any, error) {
	if h.design == nil {
		return nil, fmt.Errorf("%w: target has no design", ErrDesign)
	}
	rows, ok := data.(value.List)
	if !ok {
		return nil, fmt.Errorf("%w: data must be a list, got %s", ErrDesign, kindOf(data))
	}
	if len(rows) != len(operations) {
		return nil, fmt.Errorf("%w: %d operations but %d argument lists", ErrDesign, len(operations), len(rows))
	}

	results := make([]any, len(operations))
	var instance reflect.Value
	for i, op := range operations {
		args, err := rowArgs(rows[i], i)
		if err != nil {
			return nil, err
		}
		step := StepResult{Index: i, Operation: op, Args: args}
		start := time.Now()

		out, err := h.apply(i, op, args, instance, &step)
		step.Duration = time.Since(start)
		if err != nil {
			step.Error = err
			h.steps = append(h.steps, step)
			return nil, fmt.Errorf("operation %d (%s): %w", i, op, err)
		}

		if i == 0 {
			instance, err = promote(out)
			if err != nil {
				step.Error = err
				h.steps = append(h.steps, step)
				return nil, fmt.Errorf("operation 0 (%s): %w", op, err)
			}
		} else if out.IsValid() {
			results[i] = out.Interface()
			step.Value = results[i]
		}
		h.steps = append(h.steps, step)
	}

	h.runner.cfg.Logger.Debug("design sequence completed",
		zap.String("design", h.design.Name),
		zap.Int("operations", len(operations)))
	return results, nil
}

// apply resolves and invokes one operation. The first operation always
// resolves against the constructors, whatever its name.
func (h *designHandler) apply(i int, op string, args []value.Value, instance reflect.Value, step *StepResult) (reflect.Value, error) {
	candidates := h.design.Constructors
	var receiver any = h.design.Outer
	if i > 0 {
		candidates = h.design.methods(op)
		receiver = instance
	}
	if len(candidates) == 0 {
		return reflect.Value{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}

	b, err := h.runner.matcher.Match(h.ctx, candidates, args)
	if err != nil {
		return reflect.Value{}, err
	}
	step.Callable = b.Callable
	return b.Callable.Invoke(h.ctx, receiver, b.Args)
}

// promote turns the constructor result into an addressable instance so that
// pointer-receiver methods observe each other's mutations.
func promote(v reflect.Value) (reflect.Value, error) {
	for v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: constructor returned no instance", ErrDesign)
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: constructor returned nil", ErrDesign)
	}
	if v.Kind() != reflect.Pointer {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		return p, nil
	}
	return v, nil
}

// rowArgs reads one operation's argument list; null counts as no arguments.
func rowArgs(v value.Value, i int) ([]value.Value, error) {
	switch t := v.(type) {
	case nil, value.Null:
		return nil, nil
	case value.List:
		return []value.Value(t), nil
	default:
		return nil, fmt.Errorf("%w: arguments of operation %d must be a list, got %s", ErrDesign, i, t.Kind())
	}
}

func kindOf(v value.Value) string {
	if v == nil {
		return "null"
	}
	return v.Kind().String()
}
