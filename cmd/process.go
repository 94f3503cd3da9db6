package cmd

import (
	"fmt"

	"github.com/hance08/payments/internal/app"
	"github.com/hance08/payments/internal/config"
	"github.com/hance08/payments/internal/csvio"
	"github.com/hance08/payments/internal/ui/views"
)

type processRunner struct {
	*cli
}

func (r *processRunner) Run(path string) error {
	application, cleanup, err := app.NewApp(r.cfg, r.migrations, r.stderr)
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := application.Process(path)
	if err != nil {
		return err
	}

	if err := application.Export(report); err != nil {
		return err
	}

	switch r.cfg.Output.Format {
	case config.FormatTable:
		return views.NewAccountListView(r.cfg.Output.Precision).Render(r.stdout, report.Accounts)
	default:
		if err := csvio.NewWriter(r.stdout, r.cfg.Output.Precision).WriteAll(report.Accounts); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		return nil
	}
}
