// Command deptypes audits the trusted base of the deptypes library: it
// checks every axiom against runtime evaluation, lists the call sites of
// trusted constructors and keeps a history of audit runs.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/funvibe/deptypes/internal/audit"
	"github.com/funvibe/deptypes/internal/config"
)

// app holds the state shared by all subcommands.
type app struct {
	verbose bool
	noColor bool
	cfgPath string

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "deptypes",
		Short: "Audit the trusted base of deptypes",
		Long: `deptypes checks the axioms of the peano and logic term families
against runtime evaluation and reports where trusted constructors of
package rel are called.

The audit profile is read from --config, $DEPTYPES_CONFIG, or the first
deptypes.yaml found walking up from the current directory.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if config.IsTestMode {
				a.logger = zap.NewNop()
				return nil
			}
			cfg := zap.NewProductionConfig()
			if a.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable coloured output")
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "Audit profile (default: search for deptypes.yaml)")

	root.AddCommand(a.auditCmd())
	root.AddCommand(a.historyCmd())
	root.AddCommand(a.scanCmd())
	root.AddCommand(a.ledgerCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// profile loads the audit profile, falling back to the defaults when no
// deptypes.yaml exists.
func (a *app) profile() (*audit.Profile, error) {
	path := a.cfgPath
	if path == "" {
		path = os.Getenv(config.ConfigEnvVar)
	}
	if path == "" {
		found, err := audit.FindConfig(".")
		if err != nil {
			return nil, err
		}
		path = found
	}
	if path == "" {
		a.logger.Debug("no profile found, using defaults")
		return audit.DefaultProfile(), nil
	}
	a.logger.Debug("loading profile", zap.String("path", path))
	return audit.LoadConfig(path)
}

// printer writes to the command's output, coloured only on a terminal.
func (a *app) printer(cmd *cobra.Command) *audit.Printer {
	out := cmd.OutOrStdout()
	return &audit.Printer{Out: out, Color: !a.noColor && isTerminal(out)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
