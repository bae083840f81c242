package recorder

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plltrainer "github.com/SeamusWaldron/pll_trainer"
	"github.com/SeamusWaldron/pll_trainer/internal/pll"
	"github.com/SeamusWaldron/pll_trainer/internal/stats"
	"github.com/SeamusWaldron/pll_trainer/internal/storage"
)

const tPerm = "R U R' U' R' F R2 U' R' U' R U R' F'"

func openSession(t *testing.T, path string) (*Session, *storage.DB) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, path)
	require.NoError(t, err)

	trainer, err := plltrainer.New()
	require.NoError(t, err)

	s, err := NewSession(ctx, db, trainer, nil)
	require.NoError(t, err)
	return s, db
}

func TestSessionPersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "trainer.db")

	s, db := openSession(t, path)
	_, err := s.PickAlgorithm(ctx, pll.T, tPerm)
	require.NoError(t, err)

	var seen []plltrainer.AttemptReport
	s.SetAttemptCallback(func(r plltrainer.AttemptReport) { seen = append(seen, r) })

	first, err := s.Attempt(ctx, pll.NewCase(pll.None, pll.T, pll.None), 9000, stats.Correct)
	require.NoError(t, err)
	_, err = s.Attempt(ctx, pll.NewCase(pll.None, pll.T, pll.None), 4000, stats.Wrong)
	require.NoError(t, err)
	assert.Len(t, seen, 2)

	before := s.Trainer().Snapshot()
	require.NoError(t, db.Close())

	s, db = openSession(t, path)
	defer db.Close()
	assert.Equal(t, before, s.Trainer().Snapshot())

	history, err := s.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 2, history[0].Seq)
	assert.Equal(t, stats.Wrong, history[0].Attempt.Outcome)
	assert.Equal(t, first.ID, history[1].AttemptID)
	assert.True(t, history[1].IsNewCase)
	assert.True(t, history[1].NeedsDrill)

	tHistory, err := s.CaseHistory(ctx, pll.T)
	require.NoError(t, err)
	assert.Len(t, tHistory, 2)
}

func TestSessionRejectsInvalidAttempt(t *testing.T) {
	ctx := context.Background()
	s, db := openSession(t, filepath.Join(t.TempDir(), "trainer.db"))
	defer db.Close()

	_, err := s.Attempt(ctx, pll.NewCase(pll.None, pll.Y, pll.None), 1000, stats.Correct)
	assert.ErrorIs(t, err, plltrainer.ErrAlgorithmNotPicked)

	history, err := s.History(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSessionReset(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "trainer.db")

	s, db := openSession(t, path)
	_, err := s.PickAlgorithm(ctx, pll.T, tPerm)
	require.NoError(t, err)
	_, err = s.Attempt(ctx, pll.NewCase(pll.None, pll.T, pll.None), 5000, stats.Correct)
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx))
	assert.Equal(t, plltrainer.Snapshot{}, s.Trainer().Snapshot())
	require.NoError(t, db.Close())

	s, db = openSession(t, path)
	defer db.Close()
	assert.Equal(t, plltrainer.Snapshot{}, s.Trainer().Snapshot())

	history, err := s.History(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSessionAttemptRollsBackWhenLogFails(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "trainer.db")

	s, db := openSession(t, path)
	_, err := s.PickAlgorithm(ctx, pll.T, tPerm)
	require.NoError(t, err)
	before := s.Trainer().Snapshot()

	_, err = db.ExecContext(ctx, "DROP TABLE attempts")
	require.NoError(t, err)

	called := false
	s.SetAttemptCallback(func(plltrainer.AttemptReport) { called = true })

	_, err = s.Attempt(ctx, pll.NewCase(pll.None, pll.T, pll.None), 5000, stats.Correct)
	require.Error(t, err)
	assert.False(t, called)
	assert.Equal(t, before, s.Trainer().Snapshot())
	assert.Zero(t, s.Trainer().Snapshot().Stats.TriedCount())
	require.NoError(t, db.Close())

	s, db = openSession(t, path)
	defer db.Close()
	assert.Equal(t, before, s.Trainer().Snapshot())
}

func TestSessionAttemptRollsBackWhenSaveFails(t *testing.T) {
	ctx := context.Background()
	s, db := openSession(t, filepath.Join(t.TempDir(), "trainer.db"))
	defer db.Close()

	_, err := s.PickAlgorithm(ctx, pll.T, tPerm)
	require.NoError(t, err)
	before := s.Trainer().Snapshot()

	_, err = db.ExecContext(ctx, "DROP TABLE snapshots")
	require.NoError(t, err)

	_, err = s.Attempt(ctx, pll.NewCase(pll.None, pll.T, pll.None), 5000, stats.Correct)
	require.Error(t, err)
	assert.Equal(t, before, s.Trainer().Snapshot())

	// The log entry is rolled back with the snapshot.
	history, err := s.History(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = s.PickAlgorithm(ctx, pll.Y, "F R U' R' U' R U R' F' R U R' U' R' F R F'")
	require.Error(t, err)
	assert.Equal(t, before, s.Trainer().Snapshot())
}
