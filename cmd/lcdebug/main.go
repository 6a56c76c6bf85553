// Command lcdebug runs a Go exercise solution against line-oriented test
// input and prints one result line per input line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonwraymond/lcdebug/config"
	"github.com/jonwraymond/lcdebug/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries state shared by subcommands after PersistentPreRunE.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lcdebug",
		Short: "Run Go exercise solutions against line-oriented test input",
		Long: `lcdebug loads a Go solution file and feeds it test input one line at a time.

Each line is a comma-separated list of literals such as "[2,7,11,15], 9".
The line is matched against the solution's functions by shape, the chosen
function is called, and its result is printed as one line. A blank line or
end of input ends the session.

Data-structure design lines take the form
  ["MinStack","push","getMin"], [[],[3],[]]`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger, err = logging.New(cfg.Logging, a.verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRunCmd(a), newDescribeCmd(a), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lcdebug %s\n", version)
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
