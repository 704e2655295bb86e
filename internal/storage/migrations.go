package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 4

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS runs (
					id TEXT PRIMARY KEY,
					started_at DATETIME NOT NULL,
					finished_at DATETIME,
					processed INTEGER DEFAULT 0,
					failed INTEGER DEFAULT 0
				)`,

				`CREATE TABLE IF NOT EXISTS records (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					run_id TEXT NOT NULL,
					file_name TEXT NOT NULL,
					document_id TEXT NOT NULL,
					document_type TEXT NOT NULL,
					payload TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (run_id) REFERENCES runs(id),
					UNIQUE (run_id, file_name)
				)`,
				`CREATE INDEX idx_records_document_id ON records(document_id)`,
				`CREATE INDEX idx_records_run ON records(run_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Record per-file failures",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS failures (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					run_id TEXT NOT NULL,
					path TEXT NOT NULL,
					error TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (run_id) REFERENCES runs(id)
				)`,
				`CREATE INDEX idx_failures_run ON failures(run_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Add language column and type index to records",
		Up: func(tx *sql.Tx) error {
			if _, err := tx.Exec(`ALTER TABLE records ADD COLUMN language TEXT NOT NULL DEFAULT ''`); err != nil {
				return fmt.Errorf("failed to add language column: %w", err)
			}

			// Backfill from the stored JSON
			result, err := tx.Exec(`
				UPDATE records
				SET language = COALESCE(json_extract(payload, '$.general.language'), '')
			`)
			if err != nil {
				return fmt.Errorf("failed to backfill language: %w", err)
			}
			if n, err := result.RowsAffected(); err == nil && n > 0 {
				slog.Info("Backfilled record languages", "count", n)
			}

			if _, err := tx.Exec(`CREATE INDEX idx_records_type ON records(document_type, language)`); err != nil {
				return fmt.Errorf("failed to create type index: %w", err)
			}
			return nil
		},
	},
	{
		Version:     4,
		Description: "Key records on their source path",
		Up: func(tx *sql.Tx) error {
			// SQLite cannot change a table constraint in place, so the table is rebuilt.
			queries := []string{
				`CREATE TABLE records_new (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					run_id TEXT NOT NULL,
					source TEXT NOT NULL,
					file_name TEXT NOT NULL,
					document_id TEXT NOT NULL,
					document_type TEXT NOT NULL,
					language TEXT NOT NULL DEFAULT '',
					payload TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (run_id) REFERENCES runs(id),
					UNIQUE (run_id, source)
				)`,
				`INSERT INTO records_new (id, run_id, source, file_name, document_id, document_type, language, payload, created_at)
					SELECT id, run_id, file_name, file_name, document_id, document_type, language, payload, created_at
					FROM records`,
				`DROP TABLE records`,
				`ALTER TABLE records_new RENAME TO records`,
				`CREATE INDEX idx_records_document_id ON records(document_id)`,
				`CREATE INDEX idx_records_run ON records(run_id)`,
				`CREATE INDEX idx_records_type ON records(document_type, language)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// SchemaVersion returns the database's current schema version.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	currentVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	finalVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}
	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
