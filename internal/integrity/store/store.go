package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/handover"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/integrity"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) HandoverLinks(ctx context.Context, stationID *uuid.UUID) ([]integrity.Link, error) {
	query := `
		SELECT h.id, h.station_id, h.stage_type, h.from_party, h.previous_handover_id,
			p.id, p.station_id, p.stage_type, p.status, p.from_party
		FROM handovers h
		LEFT JOIN handovers p ON p.id = h.previous_handover_id
		WHERE ($1::uuid IS NULL OR h.station_id = $1)
		ORDER BY h.station_id, h.created_at
	`

	rows, err := s.db.QueryContext(ctx, query, stationID)
	if err != nil {
		return nil, fmt.Errorf("listing handover links: %w", err)
	}
	defer rows.Close()

	var links []integrity.Link

	for rows.Next() {
		var (
			l            integrity.Link
			stage        string
			priorID      *uuid.UUID
			priorStation *uuid.UUID
			priorFrom    *uuid.UUID
			priorStage   sql.NullString
			priorStatus  sql.NullString
		)

		if err := rows.Scan(
			&l.HandoverID, &l.StationID, &stage, &l.FromParty, &l.PreviousID,
			&priorID, &priorStation, &priorStage, &priorStatus, &priorFrom,
		); err != nil {
			return nil, fmt.Errorf("scanning handover link: %w", err)
		}

		l.Stage = handover.StageType(stage)

		if priorID != nil {
			l.Prior = &integrity.Prior{
				ID:        *priorID,
				StationID: *priorStation,
				Stage:     handover.StageType(priorStage.String),
				Status:    handover.Status(priorStatus.String),
				FromParty: *priorFrom,
			}
		}

		links = append(links, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating handover link rows: %w", err)
	}

	return links, nil
}
