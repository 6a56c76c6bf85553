package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/jonwraymond/lcdebug/callable"
	"github.com/jonwraymond/lcdebug/run"
	"github.com/jonwraymond/lcdebug/value"
)

// Exec is the session facade: it feeds input lines through the run pipeline
// and writes one output line per input line.
type Exec struct {
	runner *run.Runner
	opts   Options
	logger *zap.Logger
}

// New creates a new Exec instance with the given options.
func New(opts Options) (*Exec, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts.applyDefaults()

	logger := opts.Logger.With(zap.String("session", opts.SessionID))
	runner := run.NewRunner(
		run.WithAcceptStrategies(opts.AcceptStrategies...),
		run.WithPrintStrategies(opts.PrintStrategies...),
		run.WithLogger(logger),
	)

	return &Exec{
		runner: runner,
		opts:   opts,
		logger: logger,
	}, nil
}

// SessionID returns the id attached to this session's logs.
func (e *Exec) SessionID() string {
	return e.opts.SessionID
}

// Candidates returns the callables a line is matched against, in order.
func (e *Exec) Candidates() []*callable.Descriptor {
	return e.runner.Candidates(e.opts.Target)
}

// RunLine executes a single argument line and returns the result.
func (e *Exec) RunLine(ctx context.Context, line string) (Result, error) {
	out, err := e.runner.RunLine(ctx, e.opts.Target, line)
	res := Result{
		Output:   out.Text,
		Value:    nativeOf(out),
		Args:     out.Args,
		Duration: out.Duration,
		Error:    err,
	}
	if out.Callable != nil {
		res.Callable = out.Callable.String()
	}
	return res, err
}

// Run reads lines until a blank line, end of input, or the first error,
// writing one output line per input line. Input and output are closed on
// every exit path.
func (e *Exec) Run(ctx context.Context) (summary Summary, err error) {
	summary.SessionID = e.opts.SessionID
	in, out := e.opts.Input, e.opts.Output
	if in == nil {
		return summary, ErrInputRequired
	}
	if out == nil {
		return summary, ErrOutputRequired
	}

	start := time.Now()
	e.logger.Info("session started", zap.Int("candidates", len(e.Candidates())))
	defer func() {
		if cerr := errors.Join(in.Close(), out.Close()); err == nil && cerr != nil {
			err = fmt.Errorf("close session: %w", cerr)
		}
		summary.Duration = time.Since(start)
		fields := []zap.Field{
			zap.Int("lines", summary.Lines),
			zap.Int("failed", summary.Failed),
			zap.Duration("duration", summary.Duration),
		}
		if err != nil {
			e.logger.Error("session failed", append(fields, zap.Error(err))...)
			return
		}
		e.logger.Info("session finished", fields...)
	}()

	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		line, err := in.NextLine()
		if errors.Is(err, io.EOF) {
			return summary, nil
		}
		if err != nil {
			return summary, fmt.Errorf("read input: %w", err)
		}
		if in.IsEnd(line) {
			return summary, nil
		}
		summary.Lines++

		res, err := e.RunLine(ctx, line)
		text := res.Output
		if err != nil {
			summary.Failed++
			if !e.opts.ContinueOnError {
				return summary, fmt.Errorf("line %d: %w", summary.Lines, err)
			}
			e.logger.Warn("line failed", zap.Int("line", summary.Lines), zap.Error(err))
			text = "error: " + err.Error()
		} else {
			e.logger.Debug("line done",
				zap.Int("line", summary.Lines),
				zap.String("callable", res.Callable),
				zap.Duration("duration", res.Duration))
		}

		if err := out.ConsumeLine(text); err != nil {
			return summary, fmt.Errorf("write output: %w", err)
		}
	}
}

// RunDesign executes a design sequence against the target's design without
// going through the line parser. The final result holds every operation's
// return value; operations after a failure are reported as skipped.
func (e *Exec) RunDesign(ctx context.Context, operations []string, data []value.Value) (Result, []StepResult, error) {
	start := time.Now()
	results, runSteps, err := e.runner.RunDesign(ctx, e.opts.Target.Design, operations, data)
	duration := time.Since(start)

	stepResults := make([]StepResult, 0, len(operations))
	for _, rs := range runSteps {
		sr := StepResult{
			StepIndex: rs.Index,
			Operation: rs.Operation,
			Args:      rs.Args,
			Value:     rs.Value,
			Duration:  rs.Duration,
			Error:     rs.Error,
		}
		if rs.Callable != nil {
			sr.Callable = rs.Callable.String()
		}
		stepResults = append(stepResults, sr)
	}
	for i := len(stepResults); i < len(operations); i++ {
		stepResults = append(stepResults, StepResult{
			StepIndex: i,
			Operation: operations[i],
			Skipped:   true,
		})
	}

	if err != nil {
		return Result{Duration: duration, Error: err}, stepResults, err
	}

	text, err := e.runner.Printers().PrintValue(results)
	if err != nil {
		return Result{Value: results, Duration: duration, Error: err}, stepResults, err
	}
	return Result{
		Output:   text,
		Value:    results,
		Callable: e.opts.Target.Design.Name,
		Duration: duration,
	}, stepResults, nil
}

// nativeOf extracts the native result of an outcome. Invalid values mean the
// callable returned nothing.
func nativeOf(out run.Outcome) any {
	if !out.Value.IsValid() || !out.Value.CanInterface() {
		return nil
	}
	return out.Value.Interface()
}
