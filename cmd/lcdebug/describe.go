package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/lcdebug/code"
	"github.com/jonwraymond/lcdebug/exec"
)

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <solution.go>",
		Short: "List the candidates and design operations of a solution",
		Long: `Prints every callable a line is matched against, in matching order, and the
operation table of each design. Useful when a line reports no match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := code.Load(cmd.Context(), code.Config{
				Path:    args[0],
				Timeout: a.cfg.GetLoadTimeout(),
				Logger:  a.logger,
			})
			if err != nil {
				return err
			}
			session, err := exec.New(exec.Options{Target: prog.Target, Logger: a.logger})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			candidates := session.Candidates()
			fmt.Fprintf(w, "%s: %d candidates\n", prog.Path, len(candidates))
			for i, c := range candidates {
				fmt.Fprintf(w, "  %d. %s\n", i+1, c)
			}
			for _, d := range prog.Designs {
				fmt.Fprintf(w, "design %s: %s\n", d.Name, strings.Join(d.OperationNames(), ", "))
			}
			return nil
		},
	}
}
