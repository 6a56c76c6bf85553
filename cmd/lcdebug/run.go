package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonwraymond/lcdebug/backend"
	"github.com/jonwraymond/lcdebug/code"
	"github.com/jonwraymond/lcdebug/config"
	"github.com/jonwraymond/lcdebug/exec"
)

type runOptions struct {
	input     string
	output    string
	keepGoing bool
	normalize bool
	watch     bool
}

func newRunCmd(a *app) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run <solution.go>",
		Short: "Run a solution against test input",
		Long: `Loads the solution, then reads argument lines from the input and writes
one result line per input line to the output.

Input and output default to the console. With --watch the session is re-run
whenever the solution or input file changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.apply(cmd, a.cfg); err != nil {
				return err
			}
			path := args[0]
			if !opts.watch {
				return runSession(cmd.Context(), a, path)
			}
			return runWatch(cmd.Context(), a, path)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "read argument lines from a file (\"-\" for stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write result lines to a file (\"-\" for stdout)")
	cmd.Flags().BoolVar(&opts.keepGoing, "keep-going", false, "report failing lines as \"error: ...\" and continue")
	cmd.Flags().BoolVar(&opts.normalize, "normalize-width", false, "fold full-width characters in input to ASCII")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-run when the solution or input changes")
	return cmd
}

// apply layers explicitly set flags over the loaded configuration.
func (o *runOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = ioFromFlag(o.input)
	}
	if flags.Changed("output") {
		cfg.Output = ioFromFlag(o.output)
	}
	if flags.Changed("keep-going") {
		cfg.Session.KeepGoing = o.keepGoing
	}
	if flags.Changed("normalize-width") {
		cfg.Session.NormalizeWidth = o.normalize
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if o.watch && cfg.Input.Kind != "file" {
		return fmt.Errorf("--watch needs file input")
	}
	return nil
}

func ioFromFlag(v string) config.IOConfig {
	if v == "" || v == "-" {
		return config.IOConfig{Kind: "console"}
	}
	return config.IOConfig{Kind: "file", Path: v}
}

// runSession loads the solution and runs one session over fresh I/O.
func runSession(ctx context.Context, a *app, path string) error {
	prog, err := code.Load(ctx, code.Config{
		Path:    path,
		Timeout: a.cfg.GetLoadTimeout(),
		Logger:  a.logger,
	})
	if err != nil {
		return err
	}

	reg := backend.Default()
	in, err := reg.OpenInput(a.cfg.Input.Locator())
	if err != nil {
		return err
	}
	if a.cfg.Session.NormalizeWidth {
		in = backend.MapInput(in, backend.NormalizeWidth)
	}
	out, err := reg.OpenOutput(a.cfg.Output.Locator())
	if err != nil {
		_ = in.Close()
		return err
	}

	session, err := exec.New(exec.Options{
		Target:          prog.Target,
		Input:           in,
		Output:          out,
		Logger:          a.logger,
		ContinueOnError: a.cfg.Session.KeepGoing,
	})
	if err != nil {
		_ = in.Close()
		_ = out.Close()
		return err
	}

	summary, err := session.Run(ctx)
	a.logger.Info("session summary",
		zap.String("session", summary.SessionID),
		zap.String("solution", prog.Path),
		zap.Int("lines", summary.Lines),
		zap.Int("failed", summary.Failed),
		zap.Duration("duration", summary.Duration))
	return err
}
