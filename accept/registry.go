package accept

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/jonwraymond/lcdebug/callable"
	"github.com/jonwraymond/lcdebug/value"
)

// Registry holds acceptance strategies bucketed by parameter type.
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

// Default returns a registry with the built-in strategies.
func Default() *Registry {
	return NewRegistry(
		TreeStrategy{},
		ListStrategy{},
		RawStrategy{},
		NewGenericStrategy(),
	)
}

// Register adds strategies. Nil strategies and strategies without a type are
// ignored. Buckets stay sorted by descending order; equal orders keep their
// registration sequence.
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

// Strategies returns the strategies tried for a parameter of type t: the
// exact bucket followed by the wildcard bucket.
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

// Accept binds v to p with the first strategy that succeeds. On rejection it
// returns every strategy failure in the order tried and an error matching
// ErrRejected.
func (r *Registry) Accept(p callable.Param, v value.Value) (reflect.Value, []*AcceptanceError, error) {
	var trace []*AcceptanceError
	for _, s := range r.Strategies(p.Type) {
		out, err := s.Accept(p, value.Clone(v))
		if err == nil {
			out, err = conform(out, p.Type)
		}
		if err == nil {
			return out, nil, nil
		}
		trace = append(trace, &AcceptanceError{Strategy: s.Name(), Param: p, Err: err})
	}
	return reflect.Value{}, trace, fmt.Errorf("%w: %s %s after %d strategies", ErrRejected, p.Name, p.Type, len(trace))
}

// conform checks a strategy result against the parameter type.
func conform(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Zero(t), nil
	}
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("produced %s, want %s", v.Type(), t)
	}
	return v, nil
}
