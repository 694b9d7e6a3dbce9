package settlement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/audit"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/reading"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/variance"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=settlement
type Repository interface {
	Begin(ctx context.Context) (Tx, error)
	GetSettlement(ctx context.Context, id uuid.UUID) (*Settlement, error)
	ListSettlements(ctx context.Context, stationID uuid.UUID, limit int) ([]*Settlement, error)
}

type Tx interface {
	// LockStationDay serializes settlement attempts for the station and date until the Tx ends.
	LockStationDay(ctx context.Context, stationID uuid.UUID, date time.Time) error
	SettlementExists(ctx context.Context, stationID uuid.UUID, date time.Time) (bool, error)
	// ReadingsForSettlement returns the station day's unlinked readings, locked for update.
	ReadingsForSettlement(ctx context.Context, stationID uuid.UUID, date time.Time) ([]reading.Reading, error)
	// LockReadings returns the readings that exist among ids, locked for update.
	LockReadings(ctx context.Context, ids []uuid.UUID) ([]reading.Reading, error)
	CreateSettlement(ctx context.Context, s *Settlement) error
	// LinkReading sets the reading's settlement link, failing with ErrReadingAlreadyLinked when
	// the reading is linked already.
	LinkReading(ctx context.Context, readingID, settlementID uuid.UUID) error
	Commit() error
	Rollback() error
}

type ThresholdPolicy interface {
	Thresholds(ctx context.Context, stationID uuid.UUID, c variance.Context) (variance.Thresholds, error)
}

type Service struct {
	repo       Repository
	thresholds ThresholdPolicy
	sink       audit.Sink
	now        func() time.Time
}

func NewService(repo Repository, thresholds ThresholdPolicy, sink audit.Sink) *Service {
	return &Service{
		repo:       repo,
		thresholds: thresholds,
		sink:       sink,
		now:        time.Now,
	}
}

type RecordParams struct {
	StationID  uuid.UUID
	Date       time.Time
	ActualCash decimal.Decimal
	// ReadingIDs are the candidate readings. When empty every unlinked reading of the station day is used.
	ReadingIDs []uuid.UUID
	RecordedBy uuid.UUID
	Note       string
}

func (p RecordParams) validate() error {
	if p.StationID == uuid.Nil {
		return validationError("station is required")
	}

	if p.Date.IsZero() {
		return validationError("date is required")
	}

	if p.RecordedBy == uuid.Nil {
		return validationError("recording party is required")
	}

	if p.ActualCash.IsNegative() {
		return validationError("actual cash must not be negative")
	}

	return nil
}

// Record reconciles the counted cash for a station day against the selected readings and links
// them to the new settlement. Either everything is written or nothing is.
func (s *Service) Record(ctx context.Context, p RecordParams) (*Settlement, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	date := dateOnly(p.Date)

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin settlement: %w", err)
	}
	defer tx.Rollback()

	if err := tx.LockStationDay(ctx, p.StationID, date); err != nil {
		return nil, fmt.Errorf("lock station day: %w", err)
	}

	exists, err := tx.SettlementExists(ctx, p.StationID, date)
	if err != nil {
		return nil, fmt.Errorf("check existing settlement: %w", err)
	}

	if exists {
		return nil, ErrDuplicateSettlement
	}

	var (
		requested []uuid.UUID
		found     []reading.Reading
	)

	if len(p.ReadingIDs) > 0 {
		requested = p.ReadingIDs

		found, err = tx.LockReadings(ctx, requested)
	} else {
		found, err = tx.ReadingsForSettlement(ctx, p.StationID, date)
	}

	if err != nil {
		return nil, fmt.Errorf("load readings: %w", err)
	}

	selected, err := SelectReadings(p.StationID, date, requested, found)
	if err != nil {
		return nil, err
	}

	th, err := s.thresholds.Thresholds(ctx, p.StationID, variance.ContextSettlement)
	if err != nil {
		return nil, fmt.Errorf("resolve thresholds: %w", err)
	}

	expected := ExpectedCash(selected)
	actual := p.ActualCash.Round(2)
	result := variance.Classify(expected, actual, th)

	st := &Settlement{
		StationID:          p.StationID,
		Date:               date,
		ExpectedCash:       expected,
		ActualCash:         actual,
		Variance:           result.Variance.Neg(),
		VariancePercentage: result.Percentage,
		Status:             StatusRecorded,
		Note:               strings.TrimSpace(p.Note),
		RecordedBy:         p.RecordedBy,
	}

	if result.IsDispute {
		st.Status = StatusUnderReview
	}

	if err := tx.CreateSettlement(ctx, st); err != nil {
		return nil, fmt.Errorf("create settlement: %w", err)
	}

	for _, r := range selected {
		if err := tx.LinkReading(ctx, r.ID, st.ID); err != nil {
			if errors.Is(err, ErrReadingAlreadyLinked) {
				return nil, &InvalidReadingSetError{Problems: []ReadingProblem{{ReadingID: r.ID, Reason: ReasonAlreadyLinked}}}
			}

			return nil, fmt.Errorf("link reading %s: %w", r.ID, err)
		}

		st.ReadingIDs = append(st.ReadingIDs, r.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit settlement: %w", err)
	}

	s.sink.Record(ctx, audit.Event{
		Type:       audit.EventSettlementRecorded,
		EntityType: audit.EntitySettlement,
		EntityID:   st.ID,
		StationID:  st.StationID,
		Actor:      p.RecordedBy,
		After: audit.Snapshot{
			Status:   string(st.Status),
			Expected: &st.ExpectedCash,
			Actual:   &st.ActualCash,
			Variance: &st.Variance,
		},
		Note:       st.Note,
		OccurredAt: s.now().UTC(),
	})

	return st, nil
}

// History returns the station's settlements, most recent first.
func (s *Service) History(ctx context.Context, stationID uuid.UUID, limit int) ([]*Settlement, error) {
	if stationID == uuid.Nil {
		return nil, validationError("station is required")
	}

	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	return s.repo.ListSettlements(ctx, stationID, limit)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Settlement, error) {
	return s.repo.GetSettlement(ctx, id)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
