package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	plltrainer "github.com/SeamusWaldron/pll_trainer"
	"github.com/SeamusWaldron/pll_trainer/internal/recorder"
	"github.com/SeamusWaldron/pll_trainer/internal/storage"
)

// getDBPath returns the database path from flag, config or default.
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg != nil && cfg.DatabasePath != "" {
		return cfg.DatabasePath, nil
	}
	return storage.DefaultDBPath()
}

// openSession opens the database and restores the trainer from it. The
// returned func closes the database.
func openSession(ctx context.Context) (*recorder.Session, func(), error) {
	path, err := getDBPath()
	if err != nil {
		return nil, nil, err
	}

	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}

	trainer, err := plltrainer.New(plltrainer.WithConfig(cfg), plltrainer.WithLogger(logger))
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	session, err := recorder.NewSession(ctx, db, trainer, logger)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to open session: %w", err)
	}

	logger.Debug("Session opened", zap.String("db", path))
	return session, func() { db.Close() }, nil
}
