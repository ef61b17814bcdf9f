package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/funvibe/deptypes/internal/audit"
	"github.com/funvibe/deptypes/internal/config"
)

func (a *app) auditCmd() *cobra.Command {
	var (
		dbPath   string
		bound    int
		families []string
		noSave   bool
	)
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check every axiom against runtime evaluation",
		Long: `Runs the consistency check of every axiom selected by the profile,
prints one line per axiom and records the run in the history database.

Exits with an error when any axiom fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.profile()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("bound") {
				p.Bound = bound
			}
			if len(families) > 0 {
				p.Families = families
			}
			if err := p.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			report, err := audit.NewRunner(nil, a.logger).Run(ctx, p)
			if err != nil {
				return err
			}
			if err := a.printer(cmd).Report(report); err != nil {
				return err
			}

			if !noSave {
				store, err := audit.OpenStore(a.dbPath(dbPath, p))
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.Save(ctx, report); err != nil {
					return err
				}
				a.logger.Debug("run saved", zap.String("db", store.Path()), zap.Stringer("run", report.RunID))
			}

			if failed := report.Failed(); len(failed) > 0 {
				return fmt.Errorf("%d of %d axioms failed", len(failed), len(report.Results))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "History database (default: profile db or $DEPTYPES_DB)")
	cmd.Flags().IntVar(&bound, "bound", config.DefaultBound, "Largest sampled magnitude")
	cmd.Flags().StringSliceVar(&families, "family", nil, "Families to check (peano, logic)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not record the run")
	return cmd
}

func (a *app) historyCmd() *cobra.Command {
	var (
		dbPath string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recorded audit runs, or the results of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.profile()
			if err != nil {
				return err
			}
			store, err := audit.OpenStore(a.dbPath(dbPath, p))
			if err != nil {
				return err
			}
			defer store.Close()

			pr := a.printer(cmd)
			if len(args) == 0 {
				runs, err := store.Runs(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
					return nil
				}
				return pr.Runs(runs)
			}

			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid run id %q: %w", args[0], err)
			}
			results, err := store.Results(cmd.Context(), id)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return fmt.Errorf("run %s not found", id)
			}
			runs, err := store.Runs(cmd.Context(), 0)
			if err != nil {
				return err
			}
			report := &audit.Report{RunID: id, Results: results}
			for _, r := range runs {
				if r.RunID == id {
					report.Started, report.Bound = r.Started, r.Bound
				}
			}
			return pr.Report(report)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "History database (default: profile db or $DEPTYPES_DB)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to list (0 for all)")
	return cmd
}

// dbPath picks the history database: flag, then environment, then profile.
func (a *app) dbPath(flag string, p *audit.Profile) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(config.DBEnvVar); env != "" {
		return env
	}
	return p.DB
}
