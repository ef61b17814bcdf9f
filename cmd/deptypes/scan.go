package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/funvibe/deptypes/internal/audit"
)

func (a *app) scanCmd() *cobra.Command {
	var (
		dir   string
		allow []string
	)
	cmd := &cobra.Command{
		Use:   "scan [patterns...]",
		Short: "List calls to trusted constructors of package rel",
		Long: `Loads the packages matching the patterns (default: the profile's
scan.patterns, or ./...) and lists every reference to a trusted
constructor. References outside the allowed packages are marked with !
and make the command fail.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.profile()
			if err != nil {
				return err
			}
			patterns := p.Scan.Patterns
			if len(args) > 0 {
				patterns = args
			}
			if dir == "" {
				dir = p.Scan.Dir
			}
			if len(allow) == 0 {
				allow = p.Scan.Allow
			}

			a.logger.Debug("scanning", zap.String("dir", dir), zap.Strings("patterns", patterns))
			sites, err := audit.Scan(cmd.Context(), dir, patterns, allow)
			if err != nil {
				return err
			}
			if err := a.printer(cmd).Sites(sites); err != nil {
				return err
			}

			if bad := audit.Unexpected(sites); len(bad) > 0 {
				return fmt.Errorf("%d trusted constructor calls outside the allowed packages", len(bad))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "C", "", "Module directory (default: profile scan.dir)")
	cmd.Flags().StringSliceVar(&allow, "allow", nil, "Packages allowed to call trusted constructors")
	return cmd
}

func (a *app) ledgerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ledger",
		Short: "List the registered axioms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printer(cmd).Ledger(audit.DefaultLedger)
		},
	}
}
