package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/hance08/payments/internal/app"
	"github.com/hance08/payments/internal/store"
	"github.com/hance08/payments/internal/ui/views"
	"github.com/spf13/cobra"
)

type runsFlags struct {
	Limit int
}

type runsRunner struct {
	*cli
	flags *runsFlags
}

func NewRunsCmd(c *cli) *cobra.Command {
	flags := &runsFlags{}

	cmd := &cobra.Command{
		Use:   "runs [export.db]",
		Short: "List snapshots saved in an export database",
		Long: `List the runs exported with --export-db, newest first.
The database defaults to the configured export.database.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &runsRunner{cli: c, flags: flags}
			return runner.Run(args)
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "n", 20, "maximum number of runs to show")

	return cmd
}

func (r *runsRunner) Run(args []string) error {
	dbPath := r.cfg.Export.Database
	if len(args) == 1 {
		dbPath = args[0]
	}
	if dbPath == "" {
		return errors.New("no export database given (pass a path or set export.database)")
	}

	dbPath, err := app.ExpandPath(dbPath)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("export database %s: %w", dbPath, err)
	}

	dbStore, err := store.NewStore(dbPath, r.migrations)
	if err != nil {
		return err
	}
	defer dbStore.Close()

	runs, err := dbStore.GetAllRuns(r.flags.Limit)
	if err != nil {
		return fmt.Errorf("failed to get runs: %w", err)
	}

	return views.RenderRunList(r.stdout, runs)
}
