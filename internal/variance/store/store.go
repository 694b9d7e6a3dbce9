package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/variance"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Override returns the station's threshold override for the context, or nil when none is configured.
func (s *Store) Override(ctx context.Context, stationID uuid.UUID, c variance.Context) (*variance.Override, error) {
	query := `
		SELECT absolute_threshold, percentage_threshold
		FROM station_variance_thresholds
		WHERE station_id = $1 AND context = $2
	`

	var o variance.Override

	err := s.db.QueryRowContext(ctx, query, stationID, c).Scan(&o.Absolute, &o.Percentage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting threshold override: %w", err)
	}

	return &o, nil
}
