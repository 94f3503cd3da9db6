package cmd

import (
	"os"

	"github.com/hance08/payments/internal/app"
	"github.com/hance08/payments/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	*cli
}

func NewInfoCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display the resolved configuration, export database path, and system details.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{cli: c}
			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	exportPath, _ := app.ExpandPath(r.cfg.Export.Database)

	exportExists := false
	if exportPath != "" {
		if _, err := os.Stat(exportPath); err == nil {
			exportExists = true
		}
	}

	items := views.SystemInfoItem{
		ConfigPath:   configPath,
		ExportDBPath: exportPath,
		ExportExists: exportExists,
		OutputFormat: r.cfg.Output.Format,
		Precision:    r.cfg.Output.Precision,
		FreezeLocked: r.cfg.Engine.FreezeLocked,
		LogLevel:     r.cfg.Log.Level,
		AppDataDir:   getAppDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(r.stdout, items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
