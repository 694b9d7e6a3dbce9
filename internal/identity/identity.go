// Package identity resolves who receives cash at each custody stage from the station and user tables.
package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Directory reads station and user assignments. A missing assignment is reported as uuid.Nil
// rather than an error so callers can apply their own fallback.
type Directory struct {
	db *sql.DB
}

func New(db *sql.DB) *Directory {
	return &Directory{db: db}
}

func (d *Directory) StationManager(ctx context.Context, stationID uuid.UUID) (uuid.UUID, error) {
	return d.lookup(ctx, `SELECT manager_id FROM stations WHERE id = $1`, stationID)
}

func (d *Directory) StationOwner(ctx context.Context, stationID uuid.UUID) (uuid.UUID, error) {
	return d.lookup(ctx, `SELECT owner_id FROM stations WHERE id = $1`, stationID)
}

func (d *Directory) ManagerOf(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	return d.lookup(ctx, `SELECT manager_id FROM users WHERE id = $1`, userID)
}

func (d *Directory) lookup(ctx context.Context, query string, id uuid.UUID) (uuid.UUID, error) {
	var found *uuid.UUID

	err := d.db.QueryRowContext(ctx, query, id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, nil
		}

		return uuid.Nil, fmt.Errorf("resolving party: %w", err)
	}

	if found == nil {
		return uuid.Nil, nil
	}

	return *found, nil
}
