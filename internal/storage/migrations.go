package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
const ExpectedSchemaVersion = 2

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
				`CREATE TABLE IF NOT EXISTS sessions (
					id TEXT PRIMARY KEY,
					status TEXT NOT NULL,
					opening_cents INTEGER NOT NULL,
					opened_at DATETIME NOT NULL,
					closed_at DATETIME
				)`,
				// At most one session may be open at a time.
				`CREATE UNIQUE INDEX idx_sessions_single_open ON sessions(status) WHERE status = 'open'`,

				`CREATE TABLE IF NOT EXISTS movements (
					id TEXT PRIMARY KEY,
					session_id TEXT NOT NULL,
					type TEXT NOT NULL,
					amount_cents INTEGER NOT NULL CHECK (amount_cents >= 0),
					description TEXT NOT NULL DEFAULT '',
					payment_method TEXT,
					created_at DATETIME NOT NULL,
					FOREIGN KEY (session_id) REFERENCES sessions(id)
				)`,
				`CREATE INDEX idx_movements_session ON movements(session_id)`,
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
		Description: "Persist authorization attempt state",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS auth_state (
					id INTEGER PRIMARY KEY CHECK (id = 1),
					failed_attempts INTEGER NOT NULL DEFAULT 0,
					locked_until DATETIME
				)`)
			if err != nil {
				return fmt.Errorf("failed to create auth_state table: %w", err)
			}
			_, err = tx.Exec(`INSERT INTO auth_state (id, failed_attempts) VALUES (1, 0)`)
			if err != nil {
				return fmt.Errorf("failed to seed auth_state: %w", err)
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_versions (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create schema_versions table: %w", err)
	}

	var current sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_versions`).Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if current.Valid && m.Version <= int(current.Int64) {
			continue
		}

		slog.Info("applying migration", "version", m.Version, "description", m.Description)

		err := s.withTx(ctx, func(tx *sql.Tx) error {
			if err := m.Up(tx); err != nil {
				return fmt.Errorf("migration %d failed: %w", m.Version, err)
			}
			if _, err := tx.Exec(`INSERT INTO schema_versions (version) VALUES (?)`, m.Version); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}
