package backend

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps backend kinds to input and output factories.
type Registry struct {
	mu      sync.RWMutex
	inputs  map[string]InputFactory
	outputs map[string]OutputFactory
	info    map[string]Info
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		inputs:  make(map[string]InputFactory),
		outputs: make(map[string]OutputFactory),
		info:    make(map[string]Info),
	}
}

// Default returns a registry with the console and file kinds.
func Default() *Registry {
	r := NewRegistry()
	_ = r.RegisterInput("console", "standard input", func(string) (InputProvider, error) {
		return NewConsoleInput(), nil
	})
	_ = r.RegisterOutput("console", "standard output", func(string) (OutputConsumer, error) {
		return NewConsoleOutput(), nil
	})
	_ = r.RegisterInput("file", "read lines from a file", func(target string) (InputProvider, error) {
		in, err := OpenFileInput(target)
		if err != nil {
			return nil, err
		}
		return in, nil
	})
	_ = r.RegisterOutput("file", "write lines to a file", func(target string) (OutputConsumer, error) {
		out, err := CreateFileOutput(target)
		if err != nil {
			return nil, err
		}
		return out, nil
	})
	return r
}

// RegisterInput registers an input factory for kind.
func (r *Registry) RegisterInput(kind, description string, f InputFactory) error {
	if kind == "" || f == nil {
		return fmt.Errorf("%w: kind and factory are required", ErrInvalidLocator)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.inputs[kind]; exists {
		return fmt.Errorf("%w: input %s", ErrBackendExists, kind)
	}
	r.inputs[kind] = f
	info := r.info[kind]
	info.Kind, info.Input = kind, true
	if info.Description == "" {
		info.Description = description
	}
	r.info[kind] = info
	return nil
}

// RegisterOutput registers an output factory for kind.
func (r *Registry) RegisterOutput(kind, description string, f OutputFactory) error {
	if kind == "" || f == nil {
		return fmt.Errorf("%w: kind and factory are required", ErrInvalidLocator)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.outputs[kind]; exists {
		return fmt.Errorf("%w: output %s", ErrBackendExists, kind)
	}
	r.outputs[kind] = f
	info := r.info[kind]
	info.Kind, info.Output = kind, true
	if info.Description == "" {
		info.Description = description
	}
	r.info[kind] = info
	return nil
}

// OpenInput opens the input named by locator.
func (r *Registry) OpenInput(locator string) (InputProvider, error) {
	kind, target, err := ParseLocator(locator)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	f, ok := r.inputs[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: input %s", ErrBackendNotFound, kind)
	}
	return f(target)
}

// OpenOutput opens the output named by locator.
func (r *Registry) OpenOutput(locator string) (OutputConsumer, error) {
	kind, target, err := ParseLocator(locator)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	f, ok := r.outputs[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: output %s", ErrBackendNotFound, kind)
	}
	return f(target)
}

// Info returns metadata about kind.
func (r *Registry) Info(kind string) (Info, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.info[kind]
	return info, ok
}

// Kinds returns registered kinds sorted for deterministic output.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.info))
	for kind := range r.info {
		out = append(out, kind)
	}
	sort.Strings(out)
	return out
}
