package printer

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/jonwraymond/lcdebug/ds"
)

// ErrNoPrinter is matched by every PrintError.
var ErrNoPrinter = errors.New("no printer accepted the value")

type wildcard struct{}

// Any is the bucket key of printers that apply to every type.
var Any = reflect.TypeOf(wildcard{})

// Strategy renders values of one type.
//
// Contract:
// - Print must be a pure function of v.
// - Errors: return an error when v is not renderable; the registry tries the next strategy.
type Strategy interface {
	Name() string
	Type() reflect.Type
	Order() int
	Print(v reflect.Value) (string, error)
}

// PrintError reports that every candidate printer failed.
type PrintError struct {
	// Type is the bucket key used for selection.
	Type reflect.Type

	// Errs are the printer failures in the order tried.
	Errs []error
}

// Error names the type and the failures.
func (e *PrintError) Error() string {
	if len(e.Errs) == 0 {
		return fmt.Sprintf("%v: %v (no printers registered)", ErrNoPrinter, e.Type)
	}
	return fmt.Sprintf("%v: %v: %v", ErrNoPrinter, e.Type, errors.Join(e.Errs...))
}

// Is reports whether this error matches the target.
func (e *PrintError) Is(target error) bool {
	return target == ErrNoPrinter
}

// Unwrap returns the printer failures.
func (e *PrintError) Unwrap() []error {
	return e.Errs
}

// Registry holds printing strategies bucketed by type.
type Registry struct {
	mu      sync.RWMutex
	buckets map[reflect.Type][]Strategy
}

// NewRegistry creates a registry holding the given strategies.
func NewRegistry(strategies ...Strategy) *Registry {
	r := &Registry{buckets: make(map[reflect.Type][]Strategy)}
	r.Register(strategies...)
	return r
}

// Default returns a registry with the tree, list and generic printers.
func Default() *Registry {
	return NewRegistry(TreePrinter{}, ListPrinter{}, NewGenericPrinter())
}

// Register adds strategies, keeping each bucket in descending order with
// stable ties.
func (r *Registry) Register(strategies ...Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range strategies {
		if s == nil || s.Type() == nil {
			continue
		}
		bucket := append(r.buckets[s.Type()], s)
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Order() > bucket[j].Order()
		})
		r.buckets[s.Type()] = bucket
	}
}

// Strategies returns the printers tried for type t.
func (r *Registry) Strategies(t reflect.Type) []Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exact := r.buckets[t]
	var wild []Strategy
	if t != Any {
		wild = r.buckets[Any]
	}
	out := make([]Strategy, 0, len(exact)+len(wild))
	out = append(out, exact...)
	return append(out, wild...)
}

// Print renders v. static is the declared result type; nil or an interface
// type selects by the runtime type instead.
func (r *Registry) Print(v reflect.Value, static reflect.Type) (string, error) {
	key := selectKey(v, static)
	var errs []error
	for _, s := range r.Strategies(key) {
		out, err := s.Print(v)
		if err == nil {
			return out, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
	}
	return "", &PrintError{Type: key, Errs: errs}
}

// PrintValue renders a plain Go value selected by its runtime type.
func (r *Registry) PrintValue(v any) (string, error) {
	return r.Print(reflect.ValueOf(v), nil)
}

func selectKey(v reflect.Value, static reflect.Type) reflect.Type {
	if static != nil && static.Kind() != reflect.Interface {
		return static
	}
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return Any
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return Any
	}
	return v.Type()
}

var (
	treeType = reflect.TypeOf((*ds.TreeNode)(nil))
	listType = reflect.TypeOf((*ds.ListNode)(nil))
)

// StructureOrder is the order of the built-in structure printers.
const StructureOrder = 100

// TreePrinter renders a tree in level order with null placeholders and
// trailing nulls trimmed, e.g. [1,null,2,3]. A nil tree is [].
type TreePrinter struct{}

func (TreePrinter) Name() string       { return "tree" }
func (TreePrinter) Type() reflect.Type { return treeType }
func (TreePrinter) Order() int         { return StructureOrder }

func (TreePrinter) Print(v reflect.Value) (string, error) {
	root, err := unwrap[*ds.TreeNode](v)
	if err != nil {
		return "", err
	}
	levels := root.LevelOrder()
	parts := make([]string, len(levels))
	for i, n := range levels {
		if n == nil {
			parts[i] = "null"
			continue
		}
		parts[i] = strconv.Itoa(*n)
	}
	return "[" + strings.Join(parts, ",") + "]", nil
}

// ListPrinter renders a linked list as [1,2,3]. A nil head is [].
type ListPrinter struct{}

func (ListPrinter) Name() string       { return "linked-list" }
func (ListPrinter) Type() reflect.Type { return listType }
func (ListPrinter) Order() int         { return StructureOrder }

func (ListPrinter) Print(v reflect.Value) (string, error) {
	head, err := unwrap[*ds.ListNode](v)
	if err != nil {
		return "", err
	}
	vals := head.Values()
	parts := make([]string, len(vals))
	for i, n := range vals {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ",") + "]", nil
}

// GenericPrinter renders any value as compact JSON. Invalid values, which
// stand for void results, and nil print as null. Bytes print as
// one-character strings and whole floats keep a ".0".
type GenericPrinter struct {
	api jsoniter.API
}

// NewGenericPrinter creates the fallback printer.
func NewGenericPrinter() *GenericPrinter {
	api := jsoniter.Config{
		EscapeHTML:  false,
		SortMapKeys: true,
	}.Froze()
	api.RegisterExtension(&textExtension{})
	return &GenericPrinter{api: api}
}

func (g *GenericPrinter) Name() string       { return "generic" }
func (g *GenericPrinter) Type() reflect.Type { return Any }
func (g *GenericPrinter) Order() int         { return math.MinInt32 }

func (g *GenericPrinter) Print(v reflect.Value) (string, error) {
	if !v.IsValid() {
		return "null", nil
	}
	return g.api.MarshalToString(v.Interface())
}

func unwrap[T any](v reflect.Value) (T, error) {
	var zero T
	if !v.IsValid() {
		return zero, nil
	}
	t, ok := v.Interface().(T)
	if !ok {
		return zero, fmt.Errorf("got %s, want %T", v.Type(), zero)
	}
	return t, nil
}
