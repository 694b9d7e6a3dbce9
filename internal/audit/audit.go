// Package audit carries state-transition events out of the ledger and settlement services.
//
// Recording is fire-and-forget: a Sink never reports failure to the caller and must not
// block the transaction that produced the event.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventHandoverCreated    EventType = "handover.created"
	EventHandoverConfirmed  EventType = "handover.confirmed"
	EventHandoverDisputed   EventType = "handover.disputed"
	EventHandoverResolved   EventType = "handover.resolved"
	EventSettlementRecorded EventType = "settlement.recorded"
)

const (
	EntityHandover   = "handover"
	EntitySettlement = "settlement"
)

// Snapshot captures the amounts and status of an entity on one side of a transition.
type Snapshot struct {
	Status   string           `json:"status,omitempty"`
	Expected *decimal.Decimal `json:"expected,omitempty"`
	Actual   *decimal.Decimal `json:"actual,omitempty"`
	Variance *decimal.Decimal `json:"variance,omitempty"`
}

type Event struct {
	ID         uuid.UUID
	Type       EventType
	EntityType string
	EntityID   uuid.UUID
	StationID  uuid.UUID
	Actor      uuid.UUID
	Stage      string // handover stage; empty for settlements
	Before     *Snapshot
	After      Snapshot
	Note       string
	OccurredAt time.Time
}

type Sink interface {
	Record(ctx context.Context, e Event)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Record(context.Context, Event) {}

// Multi fans an event out to several sinks in order.
type Multi []Sink

func (m Multi) Record(ctx context.Context, e Event) {
	for _, s := range m {
		s.Record(ctx, e)
	}
}
