package store

type Repository interface {
	// Run Operations
	CreateRun(run Run) error
	GetRun(id string) (*Run, error)
	GetAllRuns(limit int) ([]*Run, error)

	// Balance Operations
	CreateBalances(runID string, balances []Balance) error
	GetBalancesByRun(runID string) ([]*Balance, error)

	Close() error
}
