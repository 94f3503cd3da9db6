package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Prepare(query string) (*sql.Stmt, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Store writes run snapshots to a SQLite export database.
type Store struct {
	db DBTX
}

var _ Repository = (*Store)(nil)

// NewStore opens the export database at dbPath, creating the file and its
// directory when missing, and migrates it to the newest schema.
func NewStore(dbPath string, migrationsFS fs.FS) (*Store, error) {
	db, err := openExportDB(dbPath)
	if err != nil {
		return nil, err
	}

	if err := migrateSchema(db, migrationsFS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate export database %s: %w", dbPath, err)
	}

	return &Store{db: db}, nil
}

func openExportDB(dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create export directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open export database %s: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to export database %s: %w", dbPath, err)
	}
	return db, nil
}

// ExecTx runs fn against a Store bound to a single SQL transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) ExecTx(fn func(Repository) error) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return ErrNestedTx
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin export transaction: %w", err)
	}

	if err := fn(&Store{db: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit export transaction: %w", err)
	}
	return nil
}

// SaveSnapshot writes a run and all of its balances atomically.
func (s *Store) SaveSnapshot(run Run, balances []Balance) error {
	return s.ExecTx(func(repo Repository) error {
		if err := repo.CreateRun(run); err != nil {
			return err
		}
		return repo.CreateBalances(run.ID, balances)
	})
}

func (s *Store) Close() error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return ErrNestedTx
	}
	return db.Close()
}

// migrateSchema applies every pending migration under migrations/ in
// migrationsFS. A database already at the newest version is left alone.
func migrateSchema(db *sql.DB, migrationsFS fs.FS) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	target, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to prepare sqlite3 migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", target)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
