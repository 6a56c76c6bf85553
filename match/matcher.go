package match

import (
	"context"
	"reflect"

	"go.uber.org/zap"

	"github.com/jonwraymond/lcdebug/accept"
	"github.com/jonwraymond/lcdebug/callable"
	"github.com/jonwraymond/lcdebug/value"
)

// Binding is the winning candidate with its native arguments.
type Binding struct {
	Callable *callable.Descriptor
	Args     []reflect.Value
}

// Matcher binds parsed arguments to one of several candidates.
//
// Contract:
// - Concurrency: safe for concurrent use if the registry is.
// - Context: checked before each candidate.
// - Errors: ErrNoCandidates for an empty set, *NoMatchError otherwise.
type Matcher struct {
	registry *accept.Registry
	logger   *zap.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithLogger sets the logger that receives no-match reports.
func WithLogger(l *zap.Logger) Option {
	return func(m *Matcher) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a matcher over the registry, or over accept.Default() when
// registry is nil.
func New(registry *accept.Registry, opts ...Option) *Matcher {
	if registry == nil {
		registry = accept.Default()
	}
	m := &Matcher{registry: registry, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Registry returns the acceptance registry used by the matcher.
func (m *Matcher) Registry() *accept.Registry { return m.registry }

// Match returns the first candidate whose parameters all accept args.
func (m *Matcher) Match(ctx context.Context, candidates []*callable.Descriptor, args []value.Value) (Binding, error) {
	if len(candidates) == 0 {
		return Binding{}, ErrNoCandidates
	}

	traces := make([]Trace, 0, len(candidates))
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return Binding{}, err
		}
		if c.ParamCount() != len(args) {
			traces = append(traces, Trace{Callable: c, Skipped: true})
			continue
		}
		bound, trace, ok := m.bind(c, args)
		if ok {
			m.logger.Debug("candidate matched",
				zap.String("callable", c.String()),
				zap.Int("rejected_before", len(traces)))
			return Binding{Callable: c, Args: bound}, nil
		}
		traces = append(traces, trace)
	}

	err := &NoMatchError{Args: args, Traces: traces}
	m.logger.Error("no candidate matched",
		zap.String("input", value.Format(args)),
		zap.Int("candidates", len(candidates)),
		zap.String("report", err.Report()))
	return Binding{}, err
}

// bind accepts args in parameter order and stops at the first rejection.
func (m *Matcher) bind(c *callable.Descriptor, args []value.Value) ([]reflect.Value, Trace, bool) {
	bound := make([]reflect.Value, len(args))
	for i, p := range c.Params() {
		out, rejections, err := m.registry.Accept(p, args[i])
		if err != nil {
			return nil, Trace{Callable: c, Index: i, Errors: rejections}, false
		}
		bound[i] = out
	}
	return bound, Trace{}, true
}
