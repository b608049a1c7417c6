package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore persists audit events in Postgres. Schema lives in
// migrations/0001_audit_events.sql.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Postgres-backed audit store over an open pool.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	const query = `
		INSERT INTO audit_events
			(id, run_id, document_id, action, status, reason_code, reason, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.db.ExecContext(ctx, query,
		event.ID, event.RunID, event.DocumentID, event.Action,
		event.Status, event.ReasonCode, event.Reason, event.DurationMS, event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByRunID(ctx context.Context, runID string) (Event, error) {
	const query = `
		SELECT id, run_id, document_id, action, status, reason_code, reason, duration_ms, created_at
		FROM audit_events
		WHERE run_id = $1`

	var event Event
	err := s.db.QueryRowContext(ctx, query, runID).Scan(
		&event.ID, &event.RunID, &event.DocumentID, &event.Action,
		&event.Status, &event.ReasonCode, &event.Reason, &event.DurationMS, &event.Timestamp,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Event{}, ErrNotFound
	}
	if err != nil {
		return Event{}, fmt.Errorf("query audit event: %w", err)
	}
	return event, nil
}
