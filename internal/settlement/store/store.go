package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/database"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/reading"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/settlement"
)

const stationDateKey = "settlements_station_date_key"

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

// selectSettlementQuery joins the linked reading ids in reading order. Callers append the
// WHERE clause, then GROUP BY s.id.
const selectSettlementQuery = `
	SELECT s.id, s.station_id, s.settlement_date, s.expected_cash, s.actual_cash, s.variance,
		s.variance_percentage, s.status, s.note, s.recorded_by, s.created_at,
		COALESCE(string_agg(r.id::text, ',' ORDER BY r.recorded_at, r.id), '') AS reading_ids
	FROM settlements s
	LEFT JOIN readings r ON r.settlement_id = s.id
`

func scanSettlement(s scanner) (*settlement.Settlement, error) {
	var st settlement.Settlement

	var status, readingIDs string

	if err := s.Scan(
		&st.ID, &st.StationID, &st.Date, &st.ExpectedCash, &st.ActualCash, &st.Variance,
		&st.VariancePercentage, &status, &st.Note, &st.RecordedBy, &st.CreatedAt,
		&readingIDs,
	); err != nil {
		return nil, err
	}

	st.Status = settlement.Status(status)

	ids, err := parseIDs(readingIDs)
	if err != nil {
		return nil, err
	}

	st.ReadingIDs = ids

	return &st, nil
}

func parseIDs(joined string) ([]uuid.UUID, error) {
	if joined == "" {
		return nil, nil
	}

	parts := strings.Split(joined, ",")
	ids := make([]uuid.UUID, 0, len(parts))

	for _, p := range parts {
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, fmt.Errorf("parsing reading id %q: %w", p, err)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func (s *Store) GetSettlement(ctx context.Context, id uuid.UUID) (*settlement.Settlement, error) {
	query := selectSettlementQuery + ` WHERE s.id = $1 GROUP BY s.id`

	st, err := scanSettlement(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, settlement.ErrNotFound
		}

		return nil, fmt.Errorf("getting settlement: %w", err)
	}

	return st, nil
}

func (s *Store) ListSettlements(ctx context.Context, stationID uuid.UUID, limit int) ([]*settlement.Settlement, error) {
	query := selectSettlementQuery + `
		WHERE s.station_id = $1
		GROUP BY s.id
		ORDER BY s.settlement_date DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, stationID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*settlement.Settlement

	for rows.Next() {
		st, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning settlement: %w", err)
		}

		settlements = append(settlements, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating settlement rows: %w", err)
	}

	return settlements, nil
}

const selectReadingColumns = `
	id, station_id, reading_date, recorded_at, total_amount, cash_amount, online_amount,
	credit_amount, settlement_id
`

func scanReading(s scanner) (reading.Reading, error) {
	var r reading.Reading

	err := s.Scan(
		&r.ID, &r.StationID, &r.Date, &r.RecordedAt, &r.TotalAmount, &r.CashAmount, &r.OnlineAmount,
		&r.CreditAmount, &r.SettlementID,
	)

	return r, err
}

type settlementTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (settlement.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning settlement tx: %w", err)
	}

	return &settlementTx{tx: dbTx}, nil
}

func (stx *settlementTx) Commit() error   { return stx.tx.Commit() }
func (stx *settlementTx) Rollback() error { return stx.tx.Rollback() }

func (stx *settlementTx) LockStationDay(ctx context.Context, stationID uuid.UUID, date time.Time) error {
	key := database.LockKey("settlement", stationID.String(), date.Format(time.DateOnly))

	return database.LockXact(ctx, stx.tx, key)
}

func (stx *settlementTx) SettlementExists(ctx context.Context, stationID uuid.UUID, date time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM settlements WHERE station_id = $1 AND settlement_date = $2)`

	var exists bool
	if err := stx.tx.QueryRowContext(ctx, query, stationID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking settlement: %w", err)
	}

	return exists, nil
}

func (stx *settlementTx) ReadingsForSettlement(ctx context.Context, stationID uuid.UUID, date time.Time) ([]reading.Reading, error) {
	query := `SELECT ` + selectReadingColumns + `
		FROM readings
		WHERE station_id = $1 AND reading_date = $2 AND settlement_id IS NULL
		ORDER BY recorded_at, id
		FOR UPDATE`

	rows, err := stx.tx.QueryContext(ctx, query, stationID, date)
	if err != nil {
		return nil, fmt.Errorf("loading readings: %w", err)
	}
	defer rows.Close()

	var readings []reading.Reading

	for rows.Next() {
		r, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning reading: %w", err)
		}

		readings = append(readings, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reading rows: %w", err)
	}

	return readings, nil
}

// LockReadings locks each existing reading in ids. Missing ids are left out of the result.
func (stx *settlementTx) LockReadings(ctx context.Context, ids []uuid.UUID) ([]reading.Reading, error) {
	query := `SELECT ` + selectReadingColumns + ` FROM readings WHERE id = $1 FOR UPDATE`

	readings := make([]reading.Reading, 0, len(ids))

	for _, id := range ids {
		r, err := scanReading(stx.tx.QueryRowContext(ctx, query, id))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				continue
			}

			return nil, fmt.Errorf("locking reading %s: %w", id, err)
		}

		readings = append(readings, r)
	}

	return readings, nil
}

func (stx *settlementTx) CreateSettlement(ctx context.Context, st *settlement.Settlement) error {
	query := `
		INSERT INTO settlements (station_id, settlement_date, expected_cash, actual_cash, variance,
			variance_percentage, status, note, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := stx.tx.QueryRowContext(ctx, query,
		st.StationID,
		st.Date,
		st.ExpectedCash,
		st.ActualCash,
		st.Variance,
		st.VariancePercentage,
		string(st.Status),
		st.Note,
		st.RecordedBy,
	).Scan(&st.ID, &st.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, stationDateKey) {
			return settlement.ErrDuplicateSettlement
		}

		return fmt.Errorf("creating settlement: %w", err)
	}

	return nil
}

func (stx *settlementTx) LinkReading(ctx context.Context, readingID, settlementID uuid.UUID) error {
	query := `UPDATE readings SET settlement_id = $1 WHERE id = $2 AND settlement_id IS NULL`

	res, err := stx.tx.ExecContext(ctx, query, settlementID, readingID)
	if err != nil {
		return fmt.Errorf("linking reading: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("linking reading: %w", err)
	}

	if n == 0 {
		return settlement.ErrReadingAlreadyLinked
	}

	return nil
}
