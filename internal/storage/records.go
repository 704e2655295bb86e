package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MuhammadZahidRWTH/docextract/internal/common"
	"github.com/MuhammadZahidRWTH/docextract/internal/model"
)

// StoredRecord is an output record with its storage metadata.
type StoredRecord struct {
	CreatedAt time.Time
	RunID     string
	Source    string
	Record    model.OutputRecord
	ID        int64
}

// Entry is a record and the path it was extracted from. Two files with the same name in
// different directories are different entries.
type Entry struct {
	Source string
	Record model.OutputRecord
}

// Failure is a file that could not be processed in a run.
type Failure struct {
	Path  string
	Error string
}

// RecordFilter narrows ListRecords. Zero fields match everything.
type RecordFilter struct {
	RunID    string
	Type     model.DocumentType
	Language model.Language
	Limit    int
}

const upsertRecord = `
	INSERT INTO records (run_id, source, file_name, document_id, document_type, language, payload)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (run_id, source) DO UPDATE SET
		file_name = excluded.file_name,
		document_id = excluded.document_id,
		document_type = excluded.document_type,
		language = excluded.language,
		payload = excluded.payload
`

// SaveRecord stores the record extracted from source under runID. Saving the same source
// twice in a run replaces the earlier record.
func (s *SQLiteStorage) SaveRecord(ctx context.Context, runID, source string, record model.OutputRecord) error {
	return s.saveBatch(ctx, runID, []Entry{{Source: source, Record: record}}, nil)
}

// SaveFailure records a file of runID that could not be processed.
func (s *SQLiteStorage) SaveFailure(ctx context.Context, runID string, failure Failure) error {
	if err := validateString(failure.Path, "path"); err != nil {
		return err
	}
	return s.saveBatch(ctx, runID, nil, []Failure{failure})
}

// saveBatch stores entries and failures of a run in one transaction.
func (s *SQLiteStorage) saveBatch(ctx context.Context, runID string, entries []Entry, failures []Failure) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(runID, "runID"); err != nil {
		return err
	}
	for _, e := range entries {
		if err := validateString(e.Source, "source"); err != nil {
			return err
		}
		if err := validateRecord(e.Record); err != nil {
			return err
		}
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if len(entries) > 0 {
			stmt, err := tx.PrepareContext(ctx, upsertRecord)
			if err != nil {
				return fmt.Errorf("failed to prepare statement: %w", err)
			}
			defer func() { _ = stmt.Close() }()

			for _, e := range entries {
				r := e.Record
				payload, err := json.Marshal(r)
				if err != nil {
					return fmt.Errorf("failed to encode record %s: %w", r.FileName, err)
				}
				docType := r.Type
				if docType == "" {
					docType = model.DocumentTypeUnknown
				}
				if _, err := stmt.ExecContext(ctx,
					runID,
					e.Source,
					r.FileName,
					r.DocumentID(),
					string(docType),
					r.General.String(model.KeyLanguage),
					string(payload),
				); err != nil {
					return fmt.Errorf("failed to insert record %s: %w", e.Source, err)
				}
			}
		}

		for _, f := range failures {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO failures (run_id, path, error) VALUES (?, ?, ?)`,
				runID, f.Path, f.Error); err != nil {
				return fmt.Errorf("failed to insert failure %s: %w", f.Path, err)
			}
		}
		return nil
	})
}

// GetRecord returns the most recently stored record with the given document id.
func (s *SQLiteStorage) GetRecord(ctx context.Context, documentID string) (*StoredRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(documentID, "documentID"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, run_id, source, payload, created_at
		FROM records
		WHERE document_id = ?
		ORDER BY id DESC
		LIMIT 1
	`, documentID)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("record %s: %w", documentID, common.ErrNotFound)
	}
	return rec, err
}

// ListRecords returns stored records in insertion order.
func (s *SQLiteStorage) ListRecords(ctx context.Context, filter RecordFilter) ([]StoredRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var where []string
	var args []any
	if filter.RunID != "" {
		where = append(where, "run_id = ?")
		args = append(args, filter.RunID)
	}
	if filter.Type != "" {
		where = append(where, "document_type = ?")
		args = append(args, string(filter.Type))
	}
	if filter.Language != "" {
		where = append(where, "language = ?")
		args = append(args, string(filter.Language))
	}

	query := `SELECT id, run_id, source, payload, created_at FROM records`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []StoredRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// CountByType counts the records of a run (all runs when runID is empty) per
// document type.
func (s *SQLiteStorage) CountByType(ctx context.Context, runID string) (map[model.DocumentType]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT document_type, COUNT(*) FROM records`
	var args []any
	if runID != "" {
		query += ` WHERE run_id = ?`
		args = append(args, runID)
	}
	query += ` GROUP BY document_type`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[model.DocumentType]int)
	for rows.Next() {
		var t string
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[model.DocumentType(t)] = n
	}
	return counts, rows.Err()
}

// ListFailures returns the failures recorded for a run.
func (s *SQLiteStorage) ListFailures(ctx context.Context, runID string) ([]Failure, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(runID, "runID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT path, error FROM failures WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query failures: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Failure
	for rows.Next() {
		var f Failure
		if err := rows.Scan(&f.Path, &f.Error); err != nil {
			return nil, fmt.Errorf("failed to scan failure: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*StoredRecord, error) {
	var rec StoredRecord
	var payload string
	if err := row.Scan(&rec.ID, &rec.RunID, &rec.Source, &payload, &rec.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan record: %w", err)
	}
	if err := json.Unmarshal([]byte(payload), &rec.Record); err != nil {
		return nil, fmt.Errorf("%w: record %d: %w", common.ErrDatabaseCorrupted, rec.ID, err)
	}
	return &rec, nil
}
