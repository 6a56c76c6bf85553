package callable

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"sync/atomic"
)

var lastID atomic.Uint64

func nextID() uint64 { return lastID.Add(1) }

var (
	errorType = reflect.TypeOf((*error)(nil)).Elem()
	anySlice  = reflect.TypeOf([]any(nil))
)

// Kind selects the descriptor variant.
type Kind int

const (
	// KindPlain exposes every Go parameter.
	KindPlain Kind = iota
	// KindReceiver hides the first Go parameter as an implicit receiver.
	KindReceiver
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "Plain"
	case KindReceiver:
		return "Receiver"
	default:
		return "Unknown"
	}
}

// Param is one externally visible formal parameter.
type Param struct {
	// Name is the parameter name; arg0..argN unless overridden.
	Name string

	// Type is the declared Go type.
	Type reflect.Type

	// Index is the zero-based position among visible parameters.
	Index int
}

// Descriptor is an immutable, invokable wrapper over a Go function.
type Descriptor struct {
	id       uint64
	name     string
	kind     Kind
	fn       reflect.Value
	params   []Param
	receiver reflect.Type
	ret      reflect.Type
	results  int  // non-error results
	errLast  bool // last Go result is an error
}

// Option customizes a Descriptor at construction time.
type Option func(*Descriptor)

// WithName overrides the name derived from the function symbol.
func WithName(name string) Option {
	return func(d *Descriptor) {
		if name != "" {
			d.name = name
		}
	}
}

// WithParamNames names the visible parameters in order.
// Extra names are ignored; missing names keep their argN default.
func WithParamNames(names ...string) Option {
	return func(d *Descriptor) {
		for i := range d.params {
			if i < len(names) && names[i] != "" {
				d.params[i].Name = names[i]
			}
		}
	}
}

// New wraps fn as a plain descriptor.
func New(fn any, opts ...Option) (*Descriptor, error) {
	return FromValue(reflect.ValueOf(fn), KindPlain, opts...)
}

// NewReceiver wraps fn as a receiver descriptor whose first parameter is
// supplied by the call target.
func NewReceiver(fn any, opts ...Option) (*Descriptor, error) {
	return FromValue(reflect.ValueOf(fn), KindReceiver, opts...)
}

// MustNew is like New but panics on error.
func MustNew(fn any, opts ...Option) *Descriptor {
	d, err := New(fn, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// FromValue wraps a reflected function value as a descriptor of the given kind.
func FromValue(fn reflect.Value, kind Kind, opts ...Option) (*Descriptor, error) {
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, ErrNotFunc
	}
	ft := fn.Type()

	d := &Descriptor{
		id:   nextID(),
		name: funcName(fn),
		kind: kind,
		fn:   fn,
	}

	first := 0
	if kind == KindReceiver {
		if ft.NumIn() == 0 {
			return nil, fmt.Errorf("%w: %s has no parameters", ErrNoReceiver, ft)
		}
		d.receiver = ft.In(0)
		first = 1
	}
	for i := first; i < ft.NumIn(); i++ {
		d.params = append(d.params, Param{
			Name:  fmt.Sprintf("arg%d", i-first),
			Type:  ft.In(i),
			Index: i - first,
		})
	}

	n := ft.NumOut()
	if n > 0 && ft.Out(n-1) == errorType {
		d.errLast = true
		n--
	}
	d.results = n
	switch n {
	case 0:
	case 1:
		d.ret = ft.Out(0)
	default:
		d.ret = anySlice
	}

	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// funcName derives a short name from the function symbol, falling back to
// the type string for closures the runtime cannot name.
func funcName(fn reflect.Value) string {
	if f := runtime.FuncForPC(fn.Pointer()); f != nil {
		name := f.Name()
		name = strings.TrimSuffix(name, "-fm")
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			name = name[i+1:]
		}
		if name != "" && !strings.HasPrefix(name, "func") && (name[0] < '0' || name[0] > '9') {
			return name
		}
	}
	return fn.Type().String()
}

// ID returns the process-unique identity of the descriptor.
func (d *Descriptor) ID() uint64 { return d.id }

// Name returns the descriptor name.
func (d *Descriptor) Name() string { return d.name }

// Kind returns the descriptor variant.
func (d *Descriptor) Kind() Kind { return d.kind }

// ParamCount returns the number of visible parameters.
func (d *Descriptor) ParamCount() int { return len(d.params) }

// Params returns a copy of the visible parameters.
func (d *Descriptor) Params() []Param {
	out := make([]Param, len(d.params))
	copy(out, d.params)
	return out
}

// ParamTypes returns the visible parameter types in order.
func (d *Descriptor) ParamTypes() []reflect.Type {
	out := make([]reflect.Type, len(d.params))
	for i, p := range d.params {
		out[i] = p.Type
	}
	return out
}

// ReceiverType returns the hidden receiver type, or nil for plain descriptors.
func (d *Descriptor) ReceiverType() reflect.Type { return d.receiver }

// ReturnType returns the static result type. It is nil when the function has
// no results besides an optional error, and []any when it has several.
func (d *Descriptor) ReturnType() reflect.Type { return d.ret }

// String renders the signature, for example "twoSum(arg0 []int, arg1 int) []int".
func (d *Descriptor) String() string {
	var sb strings.Builder
	if d.receiver != nil {
		fmt.Fprintf(&sb, "(%s).", d.receiver)
	}
	sb.WriteString(d.name)
	sb.WriteByte('(')
	for i, p := range d.params {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s %s", p.Name, p.Type)
	}
	sb.WriteByte(')')
	if d.ret != nil {
		sb.WriteByte(' ')
		sb.WriteString(d.ret.String())
	}
	return sb.String()
}
