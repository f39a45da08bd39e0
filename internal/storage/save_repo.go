package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
)

// DefaultSlot is the save slot used when none is configured.
const DefaultSlot = "main"

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type SaveRepo struct {
	db Querier
}

func NewSaveRepo(db Querier) *SaveRepo {
	return &SaveRepo{db: db}
}

func (r *SaveRepo) Get(ctx context.Context, slot string) (*Save, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT slot, run_id, COALESCE(name, ''), COALESCE(day, 1), created_at, updated_at
		FROM saves WHERE slot = ?
	`, slot)

	var s Save
	if err := row.Scan(&s.Slot, &s.RunID, &s.Name, &s.Day, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("save get: %w", err)
	}
	return &s, nil
}

func (r *SaveRepo) List(ctx context.Context) ([]Save, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT slot, run_id, COALESCE(name, ''), COALESCE(day, 1), created_at, updated_at
		FROM saves ORDER BY updated_at DESC, slot
	`)
	if err != nil {
		return nil, fmt.Errorf("save list: %w", err)
	}
	defer rows.Close()

	var out []Save
	for rows.Next() {
		var s Save
		if err := rows.Scan(&s.Slot, &s.RunID, &s.Name, &s.Day, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("save scan: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("save rows: %w", err)
	}
	return out, nil
}

// Put replaces the slot's metadata and key/value document.
func (r *SaveRepo) Put(ctx context.Context, s Save, kv map[string]string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO saves (slot, run_id, name, day)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			run_id = excluded.run_id,
			name = excluded.name,
			day = excluded.day,
			updated_at = CURRENT_TIMESTAMP
	`, s.Slot, s.RunID, s.Name, s.Day)
	if err != nil {
		return fmt.Errorf("save upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM save_kv WHERE slot = ?`, s.Slot); err != nil {
		return fmt.Errorf("save clear kv: %w", err)
	}

	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := r.db.ExecContext(ctx, `INSERT INTO save_kv (slot, key, value) VALUES (?, ?, ?)`, s.Slot, k, kv[k]); err != nil {
			return fmt.Errorf("save kv insert %s: %w", k, err)
		}
	}
	return nil
}

// LoadKV returns the slot's key/value document; empty when the slot is unused.
func (r *SaveRepo) LoadKV(ctx context.Context, slot string) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM save_kv WHERE slot = ?`, slot)
	if err != nil {
		return nil, fmt.Errorf("save kv load: %w", err)
	}
	defer rows.Close()

	kv := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("save kv scan: %w", err)
		}
		kv[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("save kv rows: %w", err)
	}
	return kv, nil
}

// Delete removes a slot with its document and event log.
func (r *SaveRepo) Delete(ctx context.Context, slot string) error {
	for _, stmt := range []string{
		`DELETE FROM events WHERE slot = ?`,
		`DELETE FROM save_kv WHERE slot = ?`,
		`DELETE FROM saves WHERE slot = ?`,
	} {
		if _, err := r.db.ExecContext(ctx, stmt, slot); err != nil {
			return fmt.Errorf("save delete: %w", err)
		}
	}
	return nil
}
