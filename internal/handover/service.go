package handover

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/audit"
	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/variance"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=handover
type Repository interface {
	Begin(ctx context.Context) (Tx, error)
	GetHandover(ctx context.Context, id uuid.UUID) (*Handover, error)
	ListHandovers(ctx context.Context, filter ListFilter) ([]*Handover, error)
}

// Tx is a unit of work over the handovers table. Every read-then-write sequence of the
// ledger runs inside one Tx.
type Tx interface {
	// LockChain serializes creations for the same (station, stage, from party) until the Tx ends.
	LockChain(ctx context.Context, stationID uuid.UUID, stage StageType, fromParty uuid.UUID) error
	// FindClaimablePrior returns the most recent settled, unclaimed handover matching q, locked
	// for update, or nil when there is none.
	FindClaimablePrior(ctx context.Context, q PriorQuery) (*Handover, error)
	CreateHandover(ctx context.Context, h *Handover) error
	GetHandoverForUpdate(ctx context.Context, id uuid.UUID) (*Handover, error)
	UpdateReview(ctx context.Context, h *Handover) error
	Commit() error
	Rollback() error
}

// Directory resolves receiving parties. Unassigned roles are returned as uuid.Nil.
type Directory interface {
	StationManager(ctx context.Context, stationID uuid.UUID) (uuid.UUID, error)
	StationOwner(ctx context.Context, stationID uuid.UUID) (uuid.UUID, error)
	ManagerOf(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

type ThresholdPolicy interface {
	Thresholds(ctx context.Context, stationID uuid.UUID, c variance.Context) (variance.Thresholds, error)
}

type Service struct {
	repo       Repository
	directory  Directory
	thresholds ThresholdPolicy
	notes      *variance.NoteFormatter
	sink       audit.Sink
	now        func() time.Time
}

func NewService(repo Repository, directory Directory, thresholds ThresholdPolicy, notes *variance.NoteFormatter, sink audit.Sink) *Service {
	return &Service{
		repo:       repo,
		directory:  directory,
		thresholds: thresholds,
		notes:      notes,
		sink:       sink,
		now:        time.Now,
	}
}

type CreateParams struct {
	Stage          StageType
	StationID      uuid.UUID
	FromParty      uuid.UUID
	ExpectedAmount decimal.Decimal
	OccurredOn     time.Time // defaults to today
	SourceShiftID  *uuid.UUID
	RequestedBy    uuid.UUID
}

type ConfirmParams struct {
	ActualAmount *decimal.Decimal
	// AcceptAsIs confirms the expected amount as counted; ActualAmount is ignored.
	AcceptAsIs  bool
	ConfirmedBy uuid.UUID
}

type ResolveParams struct {
	FinalAmount decimal.Decimal
	ResolvedBy  uuid.UUID
	Note        string
}

type ListFilter struct {
	StationID *uuid.UUID
	Stage     *StageType
	Status    *Status
	FromParty *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

func (p CreateParams) validate() error {
	if !p.Stage.Valid() {
		return validationError("unknown stage %q", p.Stage)
	}

	if p.StationID == uuid.Nil {
		return validationError("station is required")
	}

	if p.FromParty == uuid.Nil {
		return validationError("from party is required")
	}

	if p.RequestedBy == uuid.Nil {
		return validationError("requesting party is required")
	}

	if p.ExpectedAmount.IsNegative() {
		return validationError("expected amount must not be negative")
	}

	if p.SourceShiftID != nil && p.Stage != StageShiftCollection {
		return validationError("source shift is only allowed on %s", StageShiftCollection)
	}

	return nil
}

// Create records a new pending handover after checking that the prior custody stage is settled.
// The handover is linked to the prior-stage handover it claims.
func (s *Service) Create(ctx context.Context, p CreateParams) (*Handover, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	req, err := RequirementFor(p.Stage)
	if err != nil {
		return nil, err
	}

	toParty, err := s.resolveRecipient(ctx, p)
	if err != nil {
		return nil, err
	}

	occurredOn := p.OccurredOn
	if occurredOn.IsZero() {
		occurredOn = s.now()
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create: %w", err)
	}
	defer tx.Rollback()

	if err := tx.LockChain(ctx, p.StationID, p.Stage, p.FromParty); err != nil {
		return nil, fmt.Errorf("lock chain: %w", err)
	}

	var prior *Handover

	if req != nil {
		prior, err = tx.FindClaimablePrior(ctx, req.Query(p.StationID, p.FromParty))
		if err != nil {
			return nil, fmt.Errorf("find prior handover: %w", err)
		}
	}

	if err := CheckSequence(p.Stage, p.StationID, p.FromParty, prior); err != nil {
		return nil, err
	}

	h := &Handover{
		StationID:      p.StationID,
		StageType:      p.Stage,
		FromParty:      p.FromParty,
		ToParty:        toParty,
		ExpectedAmount: p.ExpectedAmount.Round(2),
		Status:         StatusPending,
		OccurredOn:     dateOnly(occurredOn),
		SourceShiftID:  p.SourceShiftID,
		CreatedBy:      p.RequestedBy,
	}

	if prior != nil {
		h.PreviousHandoverID = &prior.ID
	}

	if err := tx.CreateHandover(ctx, h); err != nil {
		return nil, fmt.Errorf("create handover: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create: %w", err)
	}

	s.record(ctx, audit.EventHandoverCreated, h, p.RequestedBy, nil, "")

	return h, nil
}

// Confirm records the counted amount for a pending handover. A variance beyond the station's
// tolerance moves the handover to disputed instead of confirmed.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID, p ConfirmParams) (*Handover, error) {
	if p.ConfirmedBy == uuid.Nil {
		return nil, validationError("confirming party is required")
	}

	if !p.AcceptAsIs {
		if p.ActualAmount == nil {
			return nil, validationError("actual amount is required unless accepting as proposed")
		}

		if p.ActualAmount.IsNegative() {
			return nil, validationError("actual amount must not be negative")
		}
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin confirm: %w", err)
	}
	defer tx.Rollback()

	h, err := tx.GetHandoverForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if h.Status != StatusPending {
		return nil, &StateError{ID: id, Op: "confirm", Status: h.Status}
	}

	before := snapshot(h)

	actual := h.ExpectedAmount
	if !p.AcceptAsIs {
		actual = p.ActualAmount.Round(2)
	}

	th, err := s.thresholds.Thresholds(ctx, h.StationID, variance.ContextHandover)
	if err != nil {
		return nil, fmt.Errorf("resolve thresholds: %w", err)
	}

	result := variance.Classify(h.ExpectedAmount, actual, th)

	now := s.now().UTC()
	h.ActualAmount = &actual
	h.Variance = &result.Variance
	h.VariancePercentage = &result.Percentage
	h.ConfirmedAt = &now
	h.ConfirmedBy = &p.ConfirmedBy
	h.Status = StatusConfirmed

	event := audit.EventHandoverConfirmed

	if result.IsDispute {
		h.Status = StatusDisputed
		h.DisputeNote = s.notes.Dispute(result)
		event = audit.EventHandoverDisputed
	}

	if err := tx.UpdateReview(ctx, h); err != nil {
		return nil, fmt.Errorf("update handover: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit confirm: %w", err)
	}

	s.record(ctx, event, h, p.ConfirmedBy, &before, h.DisputeNote)

	return h, nil
}

// ResolveDispute settles a disputed handover at the agreed final amount. Resolved is terminal.
func (s *Service) ResolveDispute(ctx context.Context, id uuid.UUID, p ResolveParams) (*Handover, error) {
	if p.ResolvedBy == uuid.Nil {
		return nil, validationError("resolving party is required")
	}

	if p.FinalAmount.IsNegative() {
		return nil, validationError("final amount must not be negative")
	}

	note := strings.TrimSpace(p.Note)
	if note == "" {
		return nil, validationError("resolution note is required")
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin resolve: %w", err)
	}
	defer tx.Rollback()

	h, err := tx.GetHandoverForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if h.Status != StatusDisputed {
		return nil, &StateError{ID: id, Op: "resolve", Status: h.Status}
	}

	before := snapshot(h)

	final := p.FinalAmount.Round(2)
	v, pct := variance.Measure(h.ExpectedAmount, final)

	now := s.now().UTC()
	h.ActualAmount = &final
	h.Variance = &v
	h.VariancePercentage = &pct
	h.Status = StatusResolved
	h.ResolutionNote = note
	h.ResolvedAt = &now
	h.ResolvedBy = &p.ResolvedBy

	if err := tx.UpdateReview(ctx, h); err != nil {
		return nil, fmt.Errorf("update handover: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit resolve: %w", err)
	}

	s.record(ctx, audit.EventHandoverResolved, h, p.ResolvedBy, &before, note)

	return h, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Handover, error) {
	return s.repo.GetHandover(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Handover, error) {
	return s.repo.ListHandovers(ctx, filter)
}

func (s *Service) resolveRecipient(ctx context.Context, p CreateParams) (uuid.UUID, error) {
	var (
		to  uuid.UUID
		err error
	)

	switch p.Stage {
	case StageShiftCollection:
		to, err = s.directory.StationManager(ctx, p.StationID)
	case StageEmployeeToManager:
		to, err = s.directory.ManagerOf(ctx, p.FromParty)
		if err == nil && to == uuid.Nil {
			to = p.RequestedBy
		}
	case StageManagerToOwner:
		to, err = s.directory.StationOwner(ctx, p.StationID)
	case StageDepositToBank:
		to = p.FromParty
	default:
		return uuid.Nil, validationError("unknown stage %q", p.Stage)
	}

	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve recipient: %w", err)
	}

	if to == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: no recipient for %s at station %s", ErrUnresolvedRecipient, p.Stage, p.StationID)
	}

	return to, nil
}

func (s *Service) record(ctx context.Context, t audit.EventType, h *Handover, actor uuid.UUID, before *audit.Snapshot, note string) {
	s.sink.Record(ctx, audit.Event{
		Type:       t,
		EntityType: audit.EntityHandover,
		EntityID:   h.ID,
		StationID:  h.StationID,
		Actor:      actor,
		Stage:      string(h.StageType),
		Before:     before,
		After:      snapshot(h),
		Note:       note,
		OccurredAt: s.now().UTC(),
	})
}

func snapshot(h *Handover) audit.Snapshot {
	expected := h.ExpectedAmount

	return audit.Snapshot{
		Status:   string(h.Status),
		Expected: &expected,
		Actual:   h.ActualAmount,
		Variance: h.Variance,
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
