package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/audit"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// WriteEvent inserts the event into audit_events. Snapshots are stored as JSONB; a missing
// before-snapshot is stored as JSON null.
func (s *Store) WriteEvent(ctx context.Context, e audit.Event) error {
	before := []byte("null")

	if e.Before != nil {
		b, err := json.Marshal(e.Before)
		if err != nil {
			return fmt.Errorf("encoding before snapshot: %w", err)
		}

		before = b
	}

	after, err := json.Marshal(e.After)
	if err != nil {
		return fmt.Errorf("encoding after snapshot: %w", err)
	}

	query := `
		INSERT INTO audit_events (id, event_type, entity_type, entity_id, station_id, actor_id, stage, before_data, after_data, note, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = s.db.ExecContext(ctx, query,
		e.ID,
		e.Type,
		e.EntityType,
		e.EntityID,
		e.StationID,
		e.Actor,
		e.Stage,
		string(before),
		string(after),
		e.Note,
		e.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("inserting audit event: %w", err)
	}

	return nil
}
