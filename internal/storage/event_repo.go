package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type EventRepo struct {
	db Querier
}

func NewEventRepo(db Querier) *EventRepo {
	return &EventRepo{db: db}
}

// Count returns how many events are stored for the slot.
func (r *EventRepo) Count(ctx context.Context, slot string) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE slot = ?`, slot)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("event count: %w", err)
	}
	return n, nil
}

// Append stores messages with consecutive sequence numbers starting at fromSeq.
func (r *EventRepo) Append(ctx context.Context, slot string, fromSeq int, at time.Time, messages []string) error {
	for i, msg := range messages {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO events (slot, seq, at, message)
			VALUES (?, ?, ?, ?)
		`, slot, fromSeq+i, at, msg)
		if err != nil {
			return fmt.Errorf("event insert: %w", err)
		}
	}
	return nil
}

// List returns the whole log of a slot in order.
func (r *EventRepo) List(ctx context.Context, slot string) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT slot, seq, at, message
		FROM events
		WHERE slot = ?
		ORDER BY seq
	`, slot)
	if err != nil {
		return nil, fmt.Errorf("event list: %w", err)
	}
	return scanEvents(rows)
}

// Tail returns the last n events of a slot in order.
func (r *EventRepo) Tail(ctx context.Context, slot string, n int) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT slot, seq, at, message FROM (
			SELECT slot, seq, at, message
			FROM events
			WHERE slot = ?
			ORDER BY seq DESC
			LIMIT ?
		) ORDER BY seq
	`, slot, n)
	if err != nil {
		return nil, fmt.Errorf("event tail: %w", err)
	}
	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]Event, error) {
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Slot, &e.Seq, &e.At, &e.Message); err != nil {
			return nil, fmt.Errorf("event scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("event rows: %w", err)
	}
	return out, nil
}
