package code

import (
	"context"
	"fmt"
	"io"
	"reflect"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/jonwraymond/lcdebug/ds"
)

// Source is a rewritten solution ready for evaluation.
type Source struct {
	Filename string
	Text     string
}

// Symbols resolves names declared by an evaluated source.
type Symbols interface {
	// Lookup returns the value of a package-level identifier.
	Lookup(name string) (reflect.Value, error)
}

// Engine evaluates Go source and exposes its declarations.
//
// Contract:
// - Context: must honor cancellation/deadlines and return ctx.Err() when canceled.
// - Errors: evaluation failures are returned as-is; the loader converts them to CodeError.
// - Ownership: each Evaluate call uses a fresh interpreter; Symbols are caller-owned.
type Engine interface {
	Evaluate(ctx context.Context, src Source) (Symbols, error)
}

// Exports makes package ds importable from interpreted sources.
var Exports = interp.Exports{
	DSImportPath + "/ds": {
		"ListNode": reflect.ValueOf((*ds.ListNode)(nil)),
		"TreeNode": reflect.ValueOf((*ds.TreeNode)(nil)),
	},
}

// YaegiEngine interprets sources with yaegi. Only the standard library and
// package ds are importable.
type YaegiEngine struct {
	stdout io.Writer
}

// NewYaegiEngine creates an engine; interpreted output goes to stdout.
func NewYaegiEngine(stdout io.Writer) *YaegiEngine {
	return &YaegiEngine{stdout: stdout}
}

// Evaluate implements Engine.
func (e *YaegiEngine) Evaluate(ctx context.Context, src Source) (Symbols, error) {
	i := interp.New(interp.Options{Stdout: e.stdout, Stderr: e.stdout})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("load stdlib: %w", err)
	}
	if err := i.Use(Exports); err != nil {
		return nil, fmt.Errorf("load ds: %w", err)
	}
	if _, err := i.EvalWithContext(ctx, src.Text); err != nil {
		return nil, err
	}
	return &yaegiSymbols{i: i}, nil
}

type yaegiSymbols struct {
	i *interp.Interpreter
}

func (s *yaegiSymbols) Lookup(name string) (reflect.Value, error) {
	v, err := s.i.Eval("main." + name)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("lookup %s: %w", name, err)
	}
	return v, nil
}
