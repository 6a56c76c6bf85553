package accept

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/jonwraymond/lcdebug/callable"
	"github.com/jonwraymond/lcdebug/value"
)

// Common errors for acceptance.
var (
	// ErrRejected is matched by every AcceptanceError and returned when no
	// strategy accepts a parameter.
	ErrRejected = errors.New("argument rejected")

	// ErrShape indicates the input value has the wrong variant for a strategy.
	ErrShape = errors.New("unexpected value shape")
)

type wildcard struct{}

// Any is the bucket key of strategies that apply to every parameter type.
var Any = reflect.TypeOf(wildcard{})

// Strategy coerces one input value into a parameter's native type.
//
// Contract:
// - Accept must not retain v; the registry hands each attempt its own clone.
// - Errors: return a descriptive error on rejection; never a zero value with nil error
// unless the zero value is the intended argument.
// - Concurrency: implementations must be safe for concurrent use.
type Strategy interface {
	// Name identifies the strategy in traces.
	Name() string

	// Type is the parameter type this strategy serves, or Any.
	Type() reflect.Type

	// Order ranks strategies within a bucket; higher runs first.
	Order() int

	// Accept produces the native argument for p from v.
	Accept(p callable.Param, v value.Value) (reflect.Value, error)
}

// AcceptanceError records one strategy's rejection of one parameter.
type AcceptanceError struct {
	// Strategy is the name of the rejecting strategy.
	Strategy string

	// Param is the parameter being bound.
	Param callable.Param

	// Err is the cause reported by the strategy.
	Err error
}

// Error returns the strategy, parameter and cause.
func (e *AcceptanceError) Error() string {
	return fmt.Sprintf("%s rejected %s %s: %v", e.Strategy, e.Param.Name, e.Param.Type, e.Err)
}

// Unwrap returns the cause.
func (e *AcceptanceError) Unwrap() error {
	return e.Err
}

// Is reports whether this error matches the target.
func (e *AcceptanceError) Is(target error) bool {
	return target == ErrRejected
}

// Func adapts a function into a Strategy.
type Func struct {
	// StrategyName identifies the strategy in traces.
	StrategyName string

	// For is the bucket key.
	For reflect.Type

	// Rank is the order within the bucket.
	Rank int

	// Fn performs the coercion.
	Fn func(p callable.Param, v value.Value) (reflect.Value, error)
}

func (f Func) Name() string       { return f.StrategyName }
func (f Func) Type() reflect.Type { return f.For }
func (f Func) Order() int         { return f.Rank }

func (f Func) Accept(p callable.Param, v value.Value) (reflect.Value, error) {
	return f.Fn(p, v)
}

func shapeError(want string, v value.Value) error {
	got := "nil"
	if v != nil {
		got = v.Kind().String()
	}
	return fmt.Errorf("%w: want %s, got %s", ErrShape, want, got)
}
