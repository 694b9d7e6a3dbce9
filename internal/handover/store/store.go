package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/database"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/handover"
)

const (
	previousHandoverKey = "handovers_previous_handover_key"

	defaultListLimit = 100
	maxListLimit     = 1000
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectHandoverColumns = `
	h.id, h.station_id, h.stage_type, h.from_party, h.to_party,
	h.expected_amount, h.actual_amount, h.variance, h.variance_percentage, h.status,
	h.previous_handover_id, h.occurred_on, h.confirmed_at, h.confirmed_by, h.source_shift_id,
	h.dispute_note, h.resolution_note, h.resolved_at, h.resolved_by,
	h.created_by, h.created_at, h.updated_at
`

// scanHandover reads a row selected with selectHandoverColumns.
func scanHandover(s scanner) (*handover.Handover, error) {
	var h handover.Handover

	var stage, status string

	var actual, variance, pct decimal.NullDecimal

	if err := s.Scan(
		&h.ID, &h.StationID, &stage, &h.FromParty, &h.ToParty,
		&h.ExpectedAmount, &actual, &variance, &pct, &status,
		&h.PreviousHandoverID, &h.OccurredOn, &h.ConfirmedAt, &h.ConfirmedBy, &h.SourceShiftID,
		&h.DisputeNote, &h.ResolutionNote, &h.ResolvedAt, &h.ResolvedBy,
		&h.CreatedBy, &h.CreatedAt, &h.UpdatedAt,
	); err != nil {
		return nil, err
	}

	h.StageType = handover.StageType(stage)
	h.Status = handover.Status(status)
	h.ActualAmount = nullable(actual)
	h.Variance = nullable(variance)
	h.VariancePercentage = nullable(pct)

	return &h, nil
}

func nullable(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}

	return &d.Decimal
}

func (s *Store) GetHandover(ctx context.Context, id uuid.UUID) (*handover.Handover, error) {
	query := `SELECT ` + selectHandoverColumns + ` FROM handovers h WHERE h.id = $1`

	h, err := scanHandover(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, handover.ErrNotFound
		}

		return nil, fmt.Errorf("getting handover: %w", err)
	}

	return h, nil
}

func (s *Store) ListHandovers(ctx context.Context, filter handover.ListFilter) ([]*handover.Handover, error) {
	query := `SELECT ` + selectHandoverColumns + ` FROM handovers h WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.StationID != nil {
		query += fmt.Sprintf(" AND h.station_id = $%d", argIdx)

		args = append(args, *filter.StationID)
		argIdx++
	}

	if filter.Stage != nil {
		query += fmt.Sprintf(" AND h.stage_type = $%d", argIdx)

		args = append(args, string(*filter.Stage))
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND h.status = $%d", argIdx)

		args = append(args, string(*filter.Status))
		argIdx++
	}

	if filter.FromParty != nil {
		query += fmt.Sprintf(" AND h.from_party = $%d", argIdx)

		args = append(args, *filter.FromParty)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND h.occurred_on >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND h.occurred_on <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY h.occurred_on DESC, h.created_at DESC LIMIT $%d", argIdx)

	args = append(args, listLimit(filter.Limit))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing handovers: %w", err)
	}
	defer rows.Close()

	var handovers []*handover.Handover

	for rows.Next() {
		h, err := scanHandover(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning handover: %w", err)
		}

		handovers = append(handovers, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating handover rows: %w", err)
	}

	return handovers, nil
}

func listLimit(n int) int {
	switch {
	case n <= 0:
		return defaultListLimit
	case n > maxListLimit:
		return maxListLimit
	default:
		return n
	}
}

type handoverTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (handover.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning handover tx: %w", err)
	}

	return &handoverTx{tx: dbTx}, nil
}

func (htx *handoverTx) Commit() error   { return htx.tx.Commit() }
func (htx *handoverTx) Rollback() error { return htx.tx.Rollback() }

func (htx *handoverTx) LockChain(ctx context.Context, stationID uuid.UUID, stage handover.StageType, fromParty uuid.UUID) error {
	key := database.LockKey("handover", stationID.String(), string(stage), fromParty.String())

	return database.LockXact(ctx, htx.tx, key)
}

func (htx *handoverTx) FindClaimablePrior(ctx context.Context, q handover.PriorQuery) (*handover.Handover, error) {
	query := `SELECT ` + selectHandoverColumns + `
		FROM handovers h
		WHERE h.station_id = $1
			AND h.stage_type = $2
			AND ($3::uuid IS NULL OR h.from_party = $3)
			AND h.status IN ('confirmed', 'resolved')
			AND NOT EXISTS (SELECT 1 FROM handovers n WHERE n.previous_handover_id = h.id)
		ORDER BY h.occurred_on DESC, h.confirmed_at DESC NULLS LAST, h.created_at DESC
		LIMIT 1
		FOR UPDATE OF h`

	h, err := scanHandover(htx.tx.QueryRowContext(ctx, query, q.StationID, string(q.Stage), q.FromParty))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("finding prior handover: %w", err)
	}

	return h, nil
}

func (htx *handoverTx) CreateHandover(ctx context.Context, h *handover.Handover) error {
	query := `
		INSERT INTO handovers (station_id, stage_type, from_party, to_party, expected_amount, status,
			previous_handover_id, occurred_on, source_shift_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := htx.tx.QueryRowContext(ctx, query,
		h.StationID,
		string(h.StageType),
		h.FromParty,
		h.ToParty,
		h.ExpectedAmount,
		string(h.Status),
		h.PreviousHandoverID,
		h.OccurredOn,
		h.SourceShiftID,
		h.CreatedBy,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, previousHandoverKey) {
			return handover.ErrChainConflict
		}

		return fmt.Errorf("creating handover: %w", err)
	}

	return nil
}

func (htx *handoverTx) GetHandoverForUpdate(ctx context.Context, id uuid.UUID) (*handover.Handover, error) {
	query := `SELECT ` + selectHandoverColumns + ` FROM handovers h WHERE h.id = $1 FOR UPDATE`

	h, err := scanHandover(htx.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, handover.ErrNotFound
		}

		return nil, fmt.Errorf("locking handover: %w", err)
	}

	return h, nil
}

// UpdateReview writes the confirmation and resolution columns. Identity columns and the chain
// link are never updated.
func (htx *handoverTx) UpdateReview(ctx context.Context, h *handover.Handover) error {
	query := `
		UPDATE handovers
		SET actual_amount = $1, variance = $2, variance_percentage = $3, status = $4,
			confirmed_at = $5, confirmed_by = $6, dispute_note = $7,
			resolution_note = $8, resolved_at = $9, resolved_by = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING updated_at
	`

	var updatedAt time.Time

	err := htx.tx.QueryRowContext(ctx, query,
		h.ActualAmount,
		h.Variance,
		h.VariancePercentage,
		string(h.Status),
		h.ConfirmedAt,
		h.ConfirmedBy,
		h.DisputeNote,
		h.ResolutionNote,
		h.ResolvedAt,
		h.ResolvedBy,
		h.ID,
	).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return handover.ErrNotFound
		}

		return fmt.Errorf("updating handover: %w", err)
	}

	h.UpdatedAt = updatedAt

	return nil
}
