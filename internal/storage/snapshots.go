package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Snapshot names used by the trainer.
const (
	SnapshotTrainer = "trainer"
)

// SnapshotRepository stores named JSON documents, one row per name.
type SnapshotRepository struct {
	db *DB
}

// NewSnapshotRepository creates a new snapshot repository.
func NewSnapshotRepository(db *DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save stores v as JSON under name, replacing any previous snapshot.
func (r *SnapshotRepository) Save(ctx context.Context, name string, v any) error {
	return r.save(ctx, r.db, name, v)
}

// SaveTx is Save inside tx.
func (r *SnapshotRepository) SaveTx(ctx context.Context, tx *sql.Tx, name string, v any) error {
	return r.save(ctx, tx, name, v)
}

func (r *SnapshotRepository) save(ctx context.Context, q execer, name string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", name, err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO snapshots (name, payload_json, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET payload_json = excluded.payload_json, updated_at = excluded.updated_at
	`, name, string(payload), time.Now().UTC().Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", name, err)
	}

	return nil
}

// Load decodes the snapshot stored under name into v. It returns false and
// leaves v untouched when there is none.
func (r *SnapshotRepository) Load(ctx context.Context, name string, v any) (bool, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, "SELECT payload_json FROM snapshots WHERE name = ?", name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load snapshot %s: %w", name, err)
	}

	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return false, fmt.Errorf("failed to decode snapshot %s: %w", name, err)
	}

	return true, nil
}

// Delete removes the snapshot stored under name.
func (r *SnapshotRepository) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM snapshots WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", name, err)
	}
	return nil
}
