package store

import (
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
)

// CreateBalances inserts the balances of a run. Call it inside ExecTx so a
// partial snapshot is never left behind.
func (s *Store) CreateBalances(runID string, balances []Balance) error {
	stmt, err := s.db.Prepare(`
        INSERT INTO balances (run_id, client, available, held, total, locked)
        VALUES (?, ?, ?, ?, ?, ?);
    `)
	if err != nil {
		return fmt.Errorf("failed to prepare balance SQL: %w", err)
	}
	defer stmt.Close()

	for _, b := range balances {
		_, err := stmt.Exec(runID, b.ClientID, b.Available.String(), b.Held.String(), b.Total.String(), b.Locked)
		if err != nil {
			var sqliteErr sqlite.Error
			if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite.ErrConstraint {
				return fmt.Errorf("failed to insert balance for client %d: %w", b.ClientID, ErrConstraintViolation)
			}
			return fmt.Errorf("failed to insert balance: %w", err)
		}
	}

	return nil
}

func (s *Store) GetBalancesByRun(runID string) ([]*Balance, error) {
	rows, err := s.db.Query(`
        SELECT run_id, client, available, held, total, locked
        FROM balances
        WHERE run_id = ?
        ORDER BY client
    `, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query balances: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var balances []*Balance
	for rows.Next() {
		b := &Balance{}
		err := rows.Scan(&b.RunID, &b.ClientID, &b.Available, &b.Held, &b.Total, &b.Locked)
		if err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}
