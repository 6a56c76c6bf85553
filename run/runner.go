package run

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/jonwraymond/lcdebug/callable"
	"github.com/jonwraymond/lcdebug/match"
	"github.com/jonwraymond/lcdebug/printer"
	"github.com/jonwraymond/lcdebug/value"
)

// Outcome is the result of one line.
type Outcome struct {
	// Text is the rendered output line.
	Text string

	// Value is the native result; invalid for void callables.
	Value reflect.Value

	// Callable is the descriptor that ran.
	Callable *callable.Descriptor

	// Args are the parsed arguments of the line.
	Args []value.Value

	// Steps holds per-operation results of a design line.
	Steps []StepResult

	// Duration covers parsing through printing.
	Duration time.Duration
}

// Runner executes lines against targets.
//
// Contract:
// - Concurrency: RunLine may be called concurrently; each call owns its ExecutionContext.
// - Context: honored between stages and before every invocation.
// - Errors: parse, match, invocation, and print errors are returned unwrapped
// so callers can test them with errors.Is/As.
type Runner struct {
	cfg     Config
	matcher *match.Matcher
	stages  []Stage
	design  *callable.Descriptor
}

// NewRunner creates a runner with the given options.
func NewRunner(opts ...ConfigOption) *Runner {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.applyDefaults()

	r := &Runner{cfg: cfg}
	r.matcher = match.New(cfg.Acceptors, match.WithLogger(cfg.Logger))

	r.stages = append([]Stage{parseStage{}, matchStage{matcher: r.matcher}}, cfg.Stages...)
	sort.SliceStable(r.stages, func(i, j int) bool {
		return r.stages[i].Order() > r.stages[j].Order()
	})

	// The handler instance is supplied per line as the receiver.
	design, err := callable.NewReceiver((*designHandler).Run,
		callable.WithName(designHandlerName),
		callable.WithParamNames("operations", "data"))
	if err != nil {
		panic(err)
	}
	r.design = design
	return r
}

// Matcher returns the runner's matcher.
func (r *Runner) Matcher() *match.Matcher { return r.matcher }

// Printers returns the runner's printer registry.
func (r *Runner) Printers() *printer.Registry { return r.cfg.Printers }

// Candidates lists the callables a line is matched against, in order.
func (r *Runner) Candidates(target Target) []*callable.Descriptor {
	out := make([]*callable.Descriptor, 0, len(target.Candidates)+1)
	out = append(out, target.Candidates...)
	if target.Design != nil {
		out = append(out, r.design)
	}
	return append(out, methodCandidates(target.Instance)...)
}

// methodCandidates wraps the exported methods of inst as bound descriptors.
func methodCandidates(inst any) []*callable.Descriptor {
	if inst == nil {
		return nil
	}
	v := reflect.ValueOf(inst)
	t := v.Type()
	out := make([]*callable.Descriptor, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		d, err := callable.FromValue(v.Method(i), callable.KindPlain, callable.WithName(t.Method(i).Name))
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return out
}

// RunLine parses, matches, invokes, and prints one line.
func (r *Runner) RunLine(ctx context.Context, target Target, line string) (Outcome, error) {
	start := time.Now()
	ec := newExecutionContext(target, r.Candidates(target), line)

	for _, s := range r.stages {
		if err := ctx.Err(); err != nil {
			return Outcome{Args: ec.Args}, err
		}
		if err := s.Process(ctx, ec); err != nil {
			return Outcome{Args: ec.Args}, err
		}
	}
	if ec.Chosen == nil {
		return Outcome{Args: ec.Args}, ErrNotChosen
	}

	out, err := r.execute(ctx, ec)
	out.Duration = time.Since(start)
	if err != nil {
		return out, err
	}
	r.cfg.Logger.Debug("line executed",
		zap.String("callable", ec.Chosen.String()),
		zap.String("output", out.Text),
		zap.Duration("duration", out.Duration))
	return out, nil
}

// execute invokes the chosen callable and renders the result. Built-in
// handlers are recognized by descriptor id and run against their own
// receiver instead of the target instance.
func (r *Runner) execute(ctx context.Context, ec *ExecutionContext) (Outcome, error) {
	out := Outcome{Callable: ec.Chosen, Args: ec.Args}

	var receiver any = ec.Target.Instance
	var handler *designHandler
	if ec.Chosen.ID() == r.design.ID() {
		handler = &designHandler{runner: r, design: ec.Target.Design, ctx: ctx}
		receiver = handler
	}

	result, err := ec.Chosen.Invoke(ctx, receiver, ec.Bound)
	if handler != nil {
		out.Steps = handler.steps
		err = unwrapHandlerError(err)
	}
	if err != nil {
		return out, err
	}
	out.Value = result

	text, err := r.cfg.Printers.Print(result, ec.Chosen.ReturnType())
	if err != nil {
		return out, err
	}
	out.Text = text
	return out, nil
}

// RunDesign runs a design sequence directly, without parsing a line.
func (r *Runner) RunDesign(ctx context.Context, design *Design, operations []string, data []value.Value) ([]any, []StepResult, error) {
	if design == nil {
		return nil, nil, fmt.Errorf("%w: no design", ErrDesign)
	}
	h := &designHandler{runner: r, design: design, ctx: ctx}
	results, err := h.Run(operations, value.List(data))
	return results, h.steps, err
}

// unwrapHandlerError strips the invocation wrapper the design handler's own
// returned error receives, leaving step errors as they were raised.
func unwrapHandlerError(err error) error {
	var tie *callable.TargetInvocationError
	if errors.As(err, &tie) && tie.Callable == designHandlerName && !tie.Panicked() {
		return tie.Err
	}
	return err
}
