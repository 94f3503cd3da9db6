package store

import "github.com/shopspring/decimal"

// Run is one processed input file.
type Run struct {
	ID        string
	Source    string
	CreatedAt int64
	Processed int
	Applied   int
	Rejected  int
}

// Balance is the final state of one client account within a run.
type Balance struct {
	RunID     string
	ClientID  uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}
