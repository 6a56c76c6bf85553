package code

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonwraymond/lcdebug/callable"
	"github.com/jonwraymond/lcdebug/run"
)

// Load reads, rewrites, and evaluates a solution, then exposes its top-level
// functions as candidates and its constructors as designs.
//
// Returns ErrConfiguration for invalid configuration, *CodeError (matching
// ErrCodeExecution) for syntax or evaluation failures, ErrLimitExceeded when
// the timeout elapses, and ErrNoCallables when nothing can be called.
func Load(ctx context.Context, cfg Config) (*Program, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	name, src, err := cfg.read()
	if err != nil {
		return nil, err
	}
	u, err := analyze(name, src)
	if err != nil {
		return nil, err
	}
	if len(u.functions) == 0 && len(u.designs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoCallables, name)
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	syms, err := cfg.Engine.Evaluate(ctx, Source{Filename: name, Text: u.source})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: evaluation timeout after %v", ErrLimitExceeded, cfg.Timeout)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, evalError(name, err)
	}

	prog := &Program{Path: name, Source: u.source}
	for _, f := range u.functions {
		d, err := bind(syms, funcWrapper(f.Name), callable.KindPlain, f)
		if err != nil {
			return nil, err
		}
		prog.Target.Candidates = append(prog.Target.Candidates, d)
	}
	for _, di := range u.designs {
		d, err := buildDesign(syms, di)
		if err != nil {
			return nil, err
		}
		prog.Designs = append(prog.Designs, d)
	}
	if len(prog.Designs) > 0 {
		prog.Target.Design = prog.Designs[0]
	}

	cfg.Logger.Debug("solution loaded",
		zap.String("path", name),
		zap.Int("functions", len(prog.Target.Candidates)),
		zap.Int("designs", len(prog.Designs)),
		zap.Strings("aliases", u.aliases),
		zap.Duration("duration", time.Since(start)))
	return prog, nil
}

func buildDesign(syms Symbols, di designInfo) (*run.Design, error) {
	d := &run.Design{Name: di.Type}
	for _, c := range di.Constructors {
		desc, err := bind(syms, ctorWrapper(di.Type, c.Name), callable.KindPlain, c)
		if err != nil {
			return nil, err
		}
		d.Constructors = append(d.Constructors, desc)
	}
	for _, m := range di.Methods {
		desc, err := bind(syms, methodWrapper(di.Type, m.Name), callable.KindReceiver, m)
		if err != nil {
			return nil, err
		}
		d.Methods = append(d.Methods, desc)
	}
	return d, nil
}

func bind(syms Symbols, wrapper string, kind callable.Kind, f funcInfo) (*callable.Descriptor, error) {
	v, err := syms.Lookup(wrapper)
	if err != nil {
		return nil, &CodeError{Message: fmt.Sprintf("resolve %s", f.Name), Line: f.Line, Err: err}
	}
	d, err := callable.FromValue(v, kind, callable.WithName(f.Name), callable.WithParamNames(f.Params...))
	if err != nil {
		return nil, &CodeError{Message: fmt.Sprintf("describe %s", f.Name), Line: f.Line, Err: err}
	}
	return d, nil
}
