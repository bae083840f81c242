package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/pll_trainer/internal/pll"
	"github.com/SeamusWaldron/pll_trainer/internal/stats"
)

// AttemptRecord is one logged attempt.
type AttemptRecord struct {
	AttemptID  string
	Seq        int
	RecordedAt time.Time
	Attempt    stats.Attempt
	IsNewCase  bool
	NeedsDrill bool
}

// AttemptRepository appends to and reads the attempt log.
type AttemptRepository struct {
	db  *DB
	now func() time.Time
}

// NewAttemptRepository creates a new attempt repository.
func NewAttemptRepository(db *DB) *AttemptRepository {
	return &AttemptRepository{db: db, now: time.Now}
}

// Create logs an attempt and returns its ID. An empty rec.AttemptID gets a
// fresh UUID.
func (r *AttemptRepository) Create(ctx context.Context, rec AttemptRecord) (string, error) {
	return r.create(ctx, r.db, rec)
}

// CreateTx is Create inside tx.
func (r *AttemptRepository) CreateTx(ctx context.Context, tx *sql.Tx, rec AttemptRecord) (string, error) {
	return r.create(ctx, tx, rec)
}

func (r *AttemptRepository) create(ctx context.Context, q execer, rec AttemptRecord) (string, error) {
	id := rec.AttemptID
	if id == "" {
		id = uuid.New().String()
	}
	recordedAt := rec.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = r.now()
	}

	a := rec.Attempt
	_, err := q.ExecContext(ctx, `
		INSERT INTO attempts (attempt_id, seq, recorded_at, pre_auf, pll, post_auf, time_ms, turns, outcome, is_new_case, needs_drill)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, rec.Seq, recordedAt.UTC().Format(time.RFC3339Nano),
		a.Case.PreAUF.String(), a.Case.PLL.Letters(), a.Case.PostAUF.String(),
		a.TimeMs, a.Turns, a.Outcome.String(), rec.IsNewCase, rec.NeedsDrill)

	if err != nil {
		return "", fmt.Errorf("failed to create attempt: %w", err)
	}

	return id, nil
}

const attemptColumns = `attempt_id, seq, recorded_at, pre_auf, pll, post_auf, time_ms, turns, outcome, is_new_case, needs_drill`

// List returns the most recent attempts, newest first.
func (r *AttemptRepository) List(ctx context.Context, limit int) ([]AttemptRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+attemptColumns+`
		FROM attempts
		ORDER BY seq DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// ListByPLL returns every attempt at p, oldest first.
func (r *AttemptRepository) ListByPLL(ctx context.Context, p pll.PLL) ([]AttemptRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+attemptColumns+`
		FROM attempts
		WHERE pll = ?
		ORDER BY seq
	`, p.Letters())

	if err != nil {
		return nil, fmt.Errorf("failed to get attempts by pll: %w", err)
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// Count returns the number of logged attempts.
func (r *AttemptRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM attempts").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attempts: %w", err)
	}
	return count, nil
}

// DeleteAll clears the log.
func (r *AttemptRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM attempts"); err != nil {
		return fmt.Errorf("failed to delete attempts: %w", err)
	}
	return nil
}

func scanAttempts(rows *sql.Rows) ([]AttemptRecord, error) {
	var records []AttemptRecord
	for rows.Next() {
		var rec AttemptRecord
		var recordedAt, pre, p, post, outcome string

		err := rows.Scan(
			&rec.AttemptID, &rec.Seq, &recordedAt,
			&pre, &p, &post,
			&rec.Attempt.TimeMs, &rec.Attempt.Turns, &outcome,
			&rec.IsNewCase, &rec.NeedsDrill,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}

		if rec.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt); err != nil {
			return nil, fmt.Errorf("failed to parse attempt time: %w", err)
		}
		if rec.Attempt.Case, err = parseCase(pre, p, post); err != nil {
			return nil, err
		}
		if rec.Attempt.Outcome, err = stats.ParseOutcome(outcome); err != nil {
			return nil, fmt.Errorf("failed to parse attempt outcome: %w", err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attempts: %w", err)
	}

	return records, nil
}

func parseCase(pre, p, post string) (pll.Case, error) {
	preAUF, err := pll.ParseAUF(pre)
	if err != nil {
		return pll.Case{}, fmt.Errorf("failed to parse attempt preAUF: %w", err)
	}
	perm, err := pll.ParsePLL(p)
	if err != nil {
		return pll.Case{}, fmt.Errorf("failed to parse attempt pll: %w", err)
	}
	postAUF, err := pll.ParseAUF(post)
	if err != nil {
		return pll.Case{}, fmt.Errorf("failed to parse attempt postAUF: %w", err)
	}
	return pll.NewCase(preAUF, perm, postAUF), nil
}
