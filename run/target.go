package run

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonwraymond/lcdebug/callable"
)

// Target is what a session runs against. It is supplied by the embedding
// caller or by the source loader; the runner never discovers it itself.
type Target struct {
	// Instance owns methods that become candidates and is the receiver for
	// receiver descriptors in Candidates. Optional.
	Instance any

	// Candidates are tried first, in order.
	Candidates []*callable.Descriptor

	// Design enables data-structure-design lines. Optional.
	Design *Design
}

// Design describes a stateful type driven by a sequence of named operations.
type Design struct {
	// Name is the type name; the first operation usually repeats it.
	Name string

	// Outer is the receiver passed to receiver-kind constructors.
	Outer any

	// Constructors create the shared instance.
	Constructors []*callable.Descriptor

	// Methods are receiver descriptors invoked on the shared instance.
	Methods []*callable.Descriptor

	once sync.Once
	ops  map[string][]*callable.Descriptor
}

// NewDesign builds a design over the exported methods of receiver, which may
// be a struct type or a pointer to one. ctors are plain constructor functions.
// Methods are taken from the pointer method set, sorted by name.
func NewDesign(name string, receiver reflect.Type, ctors ...any) (*Design, error) {
	if receiver == nil {
		return nil, fmt.Errorf("%w: nil receiver type", ErrDesign)
	}
	if receiver.Kind() != reflect.Pointer {
		receiver = reflect.PointerTo(receiver)
	}
	d := &Design{Name: name}
	for _, c := range ctors {
		desc, err := callable.New(c)
		if err != nil {
			return nil, fmt.Errorf("constructor for %s: %w", name, err)
		}
		d.Constructors = append(d.Constructors, desc)
	}
	for i := 0; i < receiver.NumMethod(); i++ {
		m := receiver.Method(i)
		desc, err := callable.FromValue(m.Func, callable.KindReceiver, callable.WithName(m.Name))
		if err != nil {
			return nil, fmt.Errorf("method %s.%s: %w", name, m.Name, err)
		}
		d.Methods = append(d.Methods, desc)
	}
	return d, nil
}

// Operations returns the operation table: constructors under the design name
// and their own names, methods under their names. The table is built on
// first use and read-only afterwards.
func (d *Design) Operations() map[string][]*callable.Descriptor {
	d.once.Do(func() {
		d.ops = make(map[string][]*callable.Descriptor)
		for _, c := range d.Constructors {
			if d.Name != "" {
				d.ops[d.Name] = append(d.ops[d.Name], c)
			}
			if c.Name() != d.Name {
				d.ops[c.Name()] = append(d.ops[c.Name()], c)
			}
		}
		for _, m := range d.Methods {
			d.ops[m.Name()] = append(d.ops[m.Name()], m)
		}
	})
	return d.ops
}

// OperationNames returns the operation table keys, sorted.
func (d *Design) OperationNames() []string {
	ops := d.Operations()
	out := make([]string, 0, len(ops))
	for name := range ops {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// methods returns the methods registered for op, trying the title-cased
// name when the exact name is unknown.
func (d *Design) methods(op string) []*callable.Descriptor {
	ops := d.Operations()
	pick := func(name string) []*callable.Descriptor {
		var out []*callable.Descriptor
		for _, c := range ops[name] {
			if c.Kind() == callable.KindReceiver && !d.isConstructor(c) {
				out = append(out, c)
			}
		}
		return out
	}
	if out := pick(op); len(out) > 0 {
		return out
	}
	return pick(cases.Title(language.Und, cases.NoLower).String(op))
}

func (d *Design) isConstructor(c *callable.Descriptor) bool {
	for _, k := range d.Constructors {
		if k == c {
			return true
		}
	}
	return false
}
