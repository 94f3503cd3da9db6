package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	migrations := os.DirFS(filepath.Join("..", ".."))
	s, err := NewStore(filepath.Join(t.TempDir(), "export", "payments.db"), migrations)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestStore_SaveSnapshotRoundTrip(t *testing.T) {
	s := newTestStore(t)

	run := Run{ID: "run-1", Source: "transactions.csv", CreatedAt: 1700000000, Processed: 5, Applied: 4, Rejected: 1}
	balances := []Balance{
		{ClientID: 2, Available: decimal.RequireFromString("1.5"), Held: decimal.Zero, Total: decimal.RequireFromString("1.5")},
		{ClientID: 1, Available: decimal.RequireFromString("0.0001"), Held: decimal.RequireFromString("3"), Total: decimal.RequireFromString("3.0001"), Locked: true},
	}

	require.NoError(t, s.SaveSnapshot(run, balances))

	got, err := s.GetRun("run-1")
	require.NoError(t, err)
	assert.Equal(t, run, *got)

	stored, err := s.GetBalancesByRun("run-1")
	require.NoError(t, err)
	require.Len(t, stored, 2)

	assert.Equal(t, uint16(1), stored[0].ClientID)
	assert.Equal(t, "run-1", stored[0].RunID)
	assert.True(t, decimal.RequireFromString("0.0001").Equal(stored[0].Available))
	assert.True(t, decimal.RequireFromString("3").Equal(stored[0].Held))
	assert.True(t, decimal.RequireFromString("3.0001").Equal(stored[0].Total))
	assert.True(t, stored[0].Locked)

	assert.Equal(t, uint16(2), stored[1].ClientID)
	assert.False(t, stored[1].Locked)
}

func TestStore_DuplicateRunRollsBack(t *testing.T) {
	s := newTestStore(t)

	run := Run{ID: "run-1", Source: "a.csv", CreatedAt: 1}
	require.NoError(t, s.SaveSnapshot(run, []Balance{{ClientID: 1, Available: decimal.Zero, Held: decimal.Zero, Total: decimal.Zero}}))

	err := s.SaveSnapshot(run, nil)
	assert.ErrorIs(t, err, ErrRunExists)

	runs, err := s.GetAllRuns(0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestStore_DuplicateBalanceRollsBackRun(t *testing.T) {
	s := newTestStore(t)

	dup := Balance{ClientID: 1, Available: decimal.Zero, Held: decimal.Zero, Total: decimal.Zero}
	err := s.SaveSnapshot(Run{ID: "run-2", Source: "b.csv", CreatedAt: 1}, []Balance{dup, dup})
	assert.ErrorIs(t, err, ErrConstraintViolation)

	_, err = s.GetRun("run-2")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestStore_GetAllRunsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveSnapshot(Run{ID: "old", Source: "a.csv", CreatedAt: 10}, nil))
	require.NoError(t, s.SaveSnapshot(Run{ID: "new", Source: "b.csv", CreatedAt: 20}, nil))

	runs, err := s.GetAllRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "new", runs[0].ID)
	assert.Equal(t, "old", runs[1].ID)

	runs, err = s.GetAllRuns(1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestStore_ReopenKeepsSchema(t *testing.T) {
	migrations := os.DirFS(filepath.Join("..", ".."))
	path := filepath.Join(t.TempDir(), "payments.db")

	s, err := NewStore(path, migrations)
	require.NoError(t, err)
	require.NoError(t, s.SaveSnapshot(Run{ID: "r", Source: "a.csv", CreatedAt: 1}, nil))
	require.NoError(t, s.Close())

	s, err = NewStore(path, migrations)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.GetRun("r")
	assert.NoError(t, err)
}

func TestStore_ExecTxDoesNotNest(t *testing.T) {
	s := newTestStore(t)

	err := s.ExecTx(func(repo Repository) error {
		inner, ok := repo.(*Store)
		require.True(t, ok)
		return inner.ExecTx(func(Repository) error { return nil })
	})
	assert.ErrorIs(t, err, ErrNestedTx)
}

func TestStore_ExecTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	boom := errors.New("boom")

	err := s.ExecTx(func(repo Repository) error {
		require.NoError(t, repo.CreateRun(Run{ID: "half", Source: "a.csv", CreatedAt: 1}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = s.GetRun("half")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
