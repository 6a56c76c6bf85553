package callable

import (
	"context"
	"fmt"
	"reflect"
	"runtime/debug"
)

// Invoke calls the descriptor with bound arguments. For receiver descriptors
// target supplies the hidden first parameter; plain descriptors ignore it.
//
// The returned value is invalid when the function produces no result. A
// returned non-nil error or a panic inside the function surfaces as
// *TargetInvocationError.
func (d *Descriptor) Invoke(ctx context.Context, target any, args []reflect.Value) (out reflect.Value, err error) {
	if err := ctx.Err(); err != nil {
		return reflect.Value{}, err
	}
	if len(args) != len(d.params) {
		return reflect.Value{}, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, d.name, len(d.params), len(args))
	}

	in := make([]reflect.Value, 0, len(args)+1)
	if d.kind == KindReceiver {
		recv, err := adaptReceiver(target, d.receiver)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%s: %w", d.name, err)
		}
		in = append(in, recv)
	}
	for i, a := range args {
		v, err := adaptArg(a, d.params[i].Type)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %s parameter %d: %v", ErrArity, d.name, i, err)
		}
		in = append(in, v)
	}

	defer func() {
		if r := recover(); r != nil {
			out = reflect.Value{}
			err = &TargetInvocationError{
				Callable: d.name,
				Err:      fmt.Errorf("panic: %v", r),
				Stack:    debug.Stack(),
			}
		}
	}()

	var results []reflect.Value
	if d.fn.Type().IsVariadic() {
		results = d.fn.CallSlice(in)
	} else {
		results = d.fn.Call(in)
	}
	return d.collect(results)
}

func (d *Descriptor) collect(results []reflect.Value) (reflect.Value, error) {
	if d.errLast {
		last := results[len(results)-1]
		if !last.IsNil() {
			return reflect.Value{}, &TargetInvocationError{Callable: d.name, Err: last.Interface().(error)}
		}
		results = results[:len(results)-1]
	}
	switch len(results) {
	case 0:
		return reflect.Value{}, nil
	case 1:
		return results[0], nil
	default:
		packed := make([]any, len(results))
		for i, r := range results {
			packed[i] = r.Interface()
		}
		return reflect.ValueOf(packed), nil
	}
}

// adaptReceiver converts target into a value assignable to the receiver type,
// dereferencing or taking the address of a copy when needed.
func adaptReceiver(target any, want reflect.Type) (reflect.Value, error) {
	rv, ok := target.(reflect.Value)
	if !ok {
		rv = reflect.ValueOf(target)
	}
	if !rv.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: nil target for %s", ErrNoReceiver, want)
	}
	t := rv.Type()
	switch {
	case t.AssignableTo(want):
		return rv, nil
	case t.Kind() == reflect.Pointer && t.Elem().AssignableTo(want):
		if rv.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil %s", ErrNoReceiver, t)
		}
		return rv.Elem(), nil
	case want.Kind() == reflect.Pointer && t.AssignableTo(want.Elem()):
		p := reflect.New(t)
		p.Elem().Set(rv)
		return p, nil
	default:
		return reflect.Value{}, fmt.Errorf("%w: target %s is not a %s", ErrNoReceiver, t, want)
	}
}

func adaptArg(v reflect.Value, want reflect.Type) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Zero(want), nil
	}
	switch t := v.Type(); {
	case t.AssignableTo(want):
		return v, nil
	case t.ConvertibleTo(want) && t.Kind() == want.Kind():
		return v.Convert(want), nil
	default:
		return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", t, want)
	}
}
