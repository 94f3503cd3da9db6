package app

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/payments/internal/config"
	"github.com/hance08/payments/internal/csvio"
	"github.com/hance08/payments/internal/payments"
	"github.com/hance08/payments/internal/store"
	"github.com/pterm/pterm"
)

type App struct {
	Config *config.Config
	Logger *pterm.Logger
	// Store is nil unless snapshot export is configured.
	Store *store.Store

	now func() time.Time
}

// Report is the outcome of processing one input.
type Report struct {
	RunID     string
	Source    string
	StartedAt time.Time
	Accounts  []payments.Account
	Stats     payments.Stats
}

// NewApp initialize logger and export store, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS, logWriter io.Writer) (*App, func(), error) {
	level, err := config.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	logger := pterm.DefaultLogger.WithLevel(level).WithWriter(logWriter)

	a := &App{
		Config: cfg,
		Logger: logger,
		now:    time.Now,
	}

	if cfg.Export.Database != "" {
		dbPath, err := ExpandPath(cfg.Export.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid export database path: %w", err)
		}

		dbStore, err := store.NewStore(dbPath, migrationFS)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize export database: %w", err)
		}
		a.Store = dbStore
	}

	cleanup := func() {
		if a.Store == nil {
			return
		}
		if err := a.Store.Close(); err != nil {
			logger.Error("failed to close export database", logger.Args("error", err))
		}
	}

	return a, cleanup, nil
}

func (a *App) newEngine() *payments.Engine {
	return payments.NewEngine(
		payments.WithAuditor(&logAuditor{logger: a.Logger}),
		payments.WithFreezeLocked(a.Config.Engine.FreezeLocked),
	)
}

// Process runs every transaction in the file at path through a fresh engine.
func (a *App) Process(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	return a.ProcessReader(path, f)
}

// ProcessReader is Process for an already open input. Any malformed record
// aborts the run and no report is returned.
func (a *App) ProcessReader(source string, r io.Reader) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		Source:    source,
		StartedAt: a.now(),
	}

	logger := a.Logger
	logger.Debug("processing transactions", logger.Args("run", report.RunID, "source", source))

	engine := a.newEngine()
	if err := csvio.ReadAll(r, engine.Execute); err != nil {
		return nil, fmt.Errorf("failed to process %s: %w", source, err)
	}

	report.Accounts = engine.Accounts()
	report.Stats = engine.Stats()

	logger.Info("run complete", logger.Args(
		"run", report.RunID,
		"accounts", len(report.Accounts),
		"processed", report.Stats.Processed,
		"applied", report.Stats.Applied,
		"rejected", report.Stats.Rejected,
	))

	return report, nil
}

// Export saves the report to the export database. It is a no-op when export
// is not configured.
func (a *App) Export(report *Report) error {
	if a.Store == nil {
		return nil
	}

	run := store.Run{
		ID:        report.RunID,
		Source:    report.Source,
		CreatedAt: report.StartedAt.Unix(),
		Processed: report.Stats.Processed,
		Applied:   report.Stats.Applied,
		Rejected:  report.Stats.Rejected,
	}

	balances := make([]store.Balance, 0, len(report.Accounts))
	for _, acc := range report.Accounts {
		balances = append(balances, store.Balance{
			RunID:     report.RunID,
			ClientID:  acc.ID,
			Available: acc.Available,
			Held:      acc.Held,
			Total:     acc.Total,
			Locked:    acc.Locked,
		})
	}

	if err := a.Store.SaveSnapshot(run, balances); err != nil {
		return fmt.Errorf("failed to export snapshot: %w", err)
	}

	a.Logger.Info("snapshot exported", a.Logger.Args("run", run.ID, "accounts", len(balances)))
	return nil
}
