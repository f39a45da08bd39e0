package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			run_id TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		// One row per snapshot key; the character is a flat key/value document.
		`CREATE TABLE IF NOT EXISTS save_kv (
			slot TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (slot, key),
			FOREIGN KEY(slot) REFERENCES saves(slot)
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			slot TEXT NOT NULL,
			seq INTEGER NOT NULL,
			at DATETIME NOT NULL,
			message TEXT NOT NULL,
			PRIMARY KEY (slot, seq),
			FOREIGN KEY(slot) REFERENCES saves(slot)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_slot_at ON events(slot, at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Columns added after the first release (ignore if already exists)
	alterStmts := []string{
		`ALTER TABLE saves ADD COLUMN day INTEGER DEFAULT 1;`,
		`ALTER TABLE saves ADD COLUMN name TEXT;`,
	}
	for _, stmt := range alterStmts {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return fmt.Errorf("migrate alter: %w", err)
		}
	}

	return nil
}
