// Package recorder keeps a trainer in sync with the database: every change
// is written to the attempt log and the trainer snapshot.
package recorder

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"go.uber.org/zap"

	plltrainer "github.com/SeamusWaldron/pll_trainer"
	"github.com/SeamusWaldron/pll_trainer/internal/logging"
	"github.com/SeamusWaldron/pll_trainer/internal/pll"
	"github.com/SeamusWaldron/pll_trainer/internal/stats"
	"github.com/SeamusWaldron/pll_trainer/internal/storage"
)

// Session binds a trainer to its stored state.
type Session struct {
	db      *storage.DB
	trainer *plltrainer.Trainer
	logger  *zap.Logger

	mu sync.Mutex

	// Repositories
	snapshotRepo *storage.SnapshotRepository
	attemptRepo  *storage.AttemptRepository

	// Callbacks
	onAttempt func(plltrainer.AttemptReport)
}

// NewSession creates a session and restores the trainer from the last
// stored snapshot, if any.
func NewSession(ctx context.Context, db *storage.DB, trainer *plltrainer.Trainer, logger *zap.Logger) (*Session, error) {
	logger = logging.OrNop(logger)

	s := &Session{
		db:           db,
		trainer:      trainer,
		logger:       logger,
		snapshotRepo: storage.NewSnapshotRepository(db),
		attemptRepo:  storage.NewAttemptRepository(db),
	}

	var snap plltrainer.Snapshot
	found, err := s.snapshotRepo.Load(ctx, storage.SnapshotTrainer, &snap)
	if err != nil {
		return nil, err
	}
	if found {
		if err := trainer.Restore(snap); err != nil {
			return nil, fmt.Errorf("failed to restore trainer: %w", err)
		}
		logger.Debug("Session restored", zap.String("db", db.Path()))
	}

	return s, nil
}

// SetAttemptCallback sets the callback for recorded attempts.
func (s *Session) SetAttemptCallback(cb func(plltrainer.AttemptReport)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onAttempt = cb
}

// Trainer returns the session's trainer. Changes made on it directly are
// not saved until the next Save.
func (s *Session) Trainer() *plltrainer.Trainer {
	return s.trainer
}

// Save writes the trainer snapshot.
func (s *Session) Save(ctx context.Context) error {
	return s.snapshotRepo.Save(ctx, storage.SnapshotTrainer, s.trainer.Snapshot())
}

// PickAlgorithm picks the algorithm for p and saves. The trainer is left
// unchanged if the save fails.
func (s *Session) PickAlgorithm(ctx context.Context, p pll.PLL, algorithm string) (pll.AlgorithmAUFs, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.trainer.Snapshot()
	m, err := s.trainer.PickAlgorithm(p, algorithm)
	if err != nil {
		return pll.AlgorithmAUFs{}, err
	}

	if err := s.Save(ctx); err != nil {
		s.rollback(prev)
		return pll.AlgorithmAUFs{}, err
	}

	return m, nil
}

// Attempt records an attempt, then logs it and saves the snapshot in one
// transaction. The trainer is left unchanged if either write fails.
func (s *Session) Attempt(ctx context.Context, c pll.Case, timeMs int64, outcome stats.Outcome) (plltrainer.AttemptReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.trainer.Snapshot()
	report, err := s.trainer.Attempt(c, timeMs, outcome)
	if err != nil {
		return plltrainer.AttemptReport{}, err
	}

	snap := s.trainer.Snapshot()
	err = s.db.Transaction(ctx, func(tx *sql.Tx) error {
		_, err := s.attemptRepo.CreateTx(ctx, tx, storage.AttemptRecord{
			AttemptID:  report.ID,
			Seq:        snap.Stats.Seq,
			Attempt:    report.Attempt,
			IsNewCase:  report.Classification.IsNewCase,
			NeedsDrill: report.Classification.NeedsDrill,
		})
		if err != nil {
			return err
		}
		return s.snapshotRepo.SaveTx(ctx, tx, storage.SnapshotTrainer, snap)
	})
	if err != nil {
		s.rollback(prev)
		return plltrainer.AttemptReport{}, err
	}

	s.logger.Debug("Attempt saved",
		zap.String("id", report.ID),
		zap.Stringer("case", c),
		zap.Int64("time_ms", timeMs))

	if s.onAttempt != nil {
		s.onAttempt(report)
	}

	return report, nil
}

func (s *Session) rollback(prev plltrainer.Snapshot) {
	if err := s.trainer.Restore(prev); err != nil {
		s.logger.Error("Failed to roll back trainer", zap.Error(err))
	}
}

// History returns the most recent logged attempts, newest first.
func (s *Session) History(ctx context.Context, limit int) ([]storage.AttemptRecord, error) {
	return s.attemptRepo.List(ctx, limit)
}

// CaseHistory returns every logged attempt at p, oldest first.
func (s *Session) CaseHistory(ctx context.Context, p pll.PLL) ([]storage.AttemptRecord, error) {
	return s.attemptRepo.ListByPLL(ctx, p)
}

// Reset forgets everything: picked algorithms, seen cases, statistics and
// the attempt log.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.trainer.Restore(plltrainer.Snapshot{}); err != nil {
		return err
	}
	if err := s.attemptRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.snapshotRepo.Delete(ctx, storage.SnapshotTrainer); err != nil {
		return err
	}

	s.logger.Debug("Session reset")
	return nil
}
