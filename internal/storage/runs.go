package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MuhammadZahidRWTH/docextract/internal/common"
)

// Run is one invocation of the extractor over a set of files.
type Run struct {
	StartedAt  time.Time
	FinishedAt *time.Time
	ID         string
	Processed  int
	Failed     int
}

// StartRun records a new run with a random id.
func (s *SQLiteStorage) StartRun(ctx context.Context) (*Run, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	run := &Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at) VALUES (?, ?)`,
		run.ID, run.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to start run: %w", err)
	}
	return run, nil
}

// FinishRun stores the final counts of a run.
func (s *SQLiteStorage) FinishRun(ctx context.Context, runID string, processed, failed int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(runID, "runID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE runs SET finished_at = ?, processed = ?, failed = ?
		WHERE id = ?
	`, time.Now().UTC(), processed, failed, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %s: %w", runID, common.ErrNotFound)
	}
	return nil
}

// ListRuns returns all runs, newest first.
func (s *SQLiteStorage) ListRuns(ctx context.Context) ([]Run, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, processed, failed
		FROM runs
		ORDER BY started_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var finished sql.NullTime
		if err := rows.Scan(&r.ID, &r.StartedAt, &finished, &r.Processed, &r.Failed); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if finished.Valid {
			t := finished.Time
			r.FinishedAt = &t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
