package run

import (
	"context"

	"github.com/jonwraymond/lcdebug/match"
	"github.com/jonwraymond/lcdebug/parse"
	"github.com/jonwraymond/lcdebug/value"
)

// Stage orders of the built-in stages.
const (
	ParseStageOrder = 200
	MatchStageOrder = 100
)

// Stage is one step of the per-line pipeline. Stages run in descending
// Order; equal orders keep registration sequence, built-ins first.
//
// Contract:
// - Process consumes its input from the execution stack and pushes its output.
// - Errors abort the line.
type Stage interface {
	Name() string
	Order() int
	Process(ctx context.Context, ec *ExecutionContext) error
}

// parseStage turns the raw line into value trees.
type parseStage struct{}

func (parseStage) Name() string { return "parse" }
func (parseStage) Order() int   { return ParseStageOrder }

func (parseStage) Process(_ context.Context, ec *ExecutionContext) error {
	line, err := popAs[string](ec)
	if err != nil {
		return err
	}
	args, err := parse.Line(line)
	if err != nil {
		return err
	}
	ec.Args = args
	ec.Push(args)
	return nil
}

// matchStage chooses the callable for the parsed arguments.
type matchStage struct {
	matcher *match.Matcher
}

func (matchStage) Name() string { return "match" }
func (matchStage) Order() int   { return MatchStageOrder }

func (s matchStage) Process(ctx context.Context, ec *ExecutionContext) error {
	args, err := popAs[[]value.Value](ec)
	if err != nil {
		return err
	}
	b, err := s.matcher.Match(ctx, ec.Candidates, args)
	if err != nil {
		return err
	}
	ec.Choose(b)
	return nil
}
