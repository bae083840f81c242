package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/pll_trainer/internal/learning"
	"github.com/SeamusWaldron/pll_trainer/internal/pll"
	"github.com/SeamusWaldron/pll_trainer/internal/stats"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	version, err := db.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)

	// Migrating again is a no-op.
	require.NoError(t, db.MigrateUp(ctx))
	version, err = db.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSnapshotRepository(db).Save(ctx, "k", map[string]int{"a": 1}))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, path, db.Path())

	var got map[string]int
	ok, err := NewSnapshotRepository(db).Load(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, map[string]int{"a": 1}, got)
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepository(openTestDB(t))

	var missing learning.State
	ok, err := repo.Load(ctx, "learning", &missing)
	require.NoError(t, err)
	assert.False(t, ok)

	state := learning.Apply(stats.Attempt{Case: pll.NewCase(pll.U, pll.T, pll.U2)}, learning.NewState())
	st := stats.Record(stats.New(), stats.Attempt{Case: pll.NewCase(pll.U, pll.T, pll.U2), TimeMs: 1500, Turns: 17})

	require.NoError(t, repo.Save(ctx, "learning", state))
	require.NoError(t, repo.Save(ctx, "stats", st))

	var gotState learning.State
	ok, err = repo.Load(ctx, "learning", &gotState)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, state, gotState)

	var gotStats stats.Stats
	ok, err = repo.Load(ctx, "stats", &gotStats)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, st, gotStats)

	// Saving again replaces.
	require.NoError(t, repo.Save(ctx, "learning", learning.NewState()))
	ok, err = repo.Load(ctx, "learning", &gotState)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, learning.NewState(), gotState)

	require.NoError(t, repo.Delete(ctx, "learning"))
	ok, err = repo.Load(ctx, "learning", &gotState)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAttemptLog(t *testing.T) {
	ctx := context.Background()
	repo := NewAttemptRepository(openTestDB(t))
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return at }

	first := AttemptRecord{
		Seq: 1,
		Attempt: stats.Attempt{
			Case:    pll.NewCase(pll.None, pll.T, pll.U),
			TimeMs:  2500,
			Turns:   15,
			Outcome: stats.Correct,
		},
		IsNewCase: true,
	}
	second := AttemptRecord{
		Seq: 2,
		Attempt: stats.Attempt{
			Case:    pll.NewCase(pll.UPrime, pll.Ja, pll.U2),
			TimeMs:  4000,
			Turns:   16,
			Outcome: stats.Wrong,
		},
		IsNewCase:  true,
		NeedsDrill: true,
	}

	id1, err := repo.Create(ctx, first)
	require.NoError(t, err)
	assert.Len(t, id1, 36)
	id2, err := repo.Create(ctx, second)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	recent, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, id2, recent[0].AttemptID)
	assert.Equal(t, second.Attempt, recent[0].Attempt)
	assert.True(t, recent[0].NeedsDrill)
	assert.Equal(t, at, recent[0].RecordedAt)

	ts, err := repo.ListByPLL(ctx, pll.T)
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.Equal(t, id1, ts[0].AttemptID)
	assert.Equal(t, first.Attempt, ts[0].Attempt)
	assert.True(t, ts[0].IsNewCase)
	assert.False(t, ts[0].NeedsDrill)

	require.NoError(t, repo.DeleteAll(ctx))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestAttemptKeepsGivenID(t *testing.T) {
	ctx := context.Background()
	repo := NewAttemptRepository(openTestDB(t))

	id, err := repo.Create(ctx, AttemptRecord{
		AttemptID: "fixed-id",
		Attempt:   stats.Attempt{Case: pll.NewCase(pll.None, pll.H, pll.None)},
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id)

	_, err = repo.Create(ctx, AttemptRecord{AttemptID: "fixed-id"})
	assert.Error(t, err, "duplicate ID")
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO snapshots (name, payload_json, updated_at) VALUES ('x', '{}', '')"); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	var got map[string]any
	ok, err := NewSnapshotRepository(db).Load(ctx, "x", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}
