package store

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
)

func (s *Store) CreateRun(run Run) error {
	_, err := s.db.Exec(`
        INSERT INTO runs (id, source, created_at, processed, applied, rejected)
        VALUES (?, ?, ?, ?, ?, ?);
    `, run.ID, run.Source, run.CreatedAt, run.Processed, run.Applied, run.Rejected)

	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite.ErrConstraint {
			return fmt.Errorf("failed to create run '%s': %w", run.ID, ErrRunExists)
		}
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

func (s *Store) GetRun(id string) (*Run, error) {
	run := &Run{}
	err := s.db.QueryRow(`
        SELECT id, source, created_at, processed, applied, rejected
        FROM runs
        WHERE id = ?
    `, id).Scan(&run.ID, &run.Source, &run.CreatedAt, &run.Processed, &run.Applied, &run.Rejected)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("run '%s': %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query run '%s': %w", id, err)
	}

	return run, nil
}

// GetAllRuns returns the most recent runs first.
func (s *Store) GetAllRuns(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 100 // Default limit
	}

	rows, err := s.db.Query(`
        SELECT id, source, created_at, processed, applied, rejected
        FROM runs
        ORDER BY created_at DESC, rowid DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var runs []*Run
	for rows.Next() {
		run := &Run{}
		err := rows.Scan(&run.ID, &run.Source, &run.CreatedAt, &run.Processed, &run.Applied, &run.Rejected)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
