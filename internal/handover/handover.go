package handover

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StageType is the custody stage a handover records.
type StageType string

const (
	StageShiftCollection   StageType = "shift_collection"
	StageEmployeeToManager StageType = "employee_to_manager"
	StageManagerToOwner    StageType = "manager_to_owner"
	StageDepositToBank     StageType = "deposit_to_bank"
)

// Stages lists every stage in custody order.
var Stages = []StageType{
	StageShiftCollection,
	StageEmployeeToManager,
	StageManagerToOwner,
	StageDepositToBank,
}

func (s StageType) Valid() bool {
	_, ok := sequenceRules[s]
	return ok
}

// Status represents the lifecycle state of a handover.
//
//	pending --confirm (within tolerance)--> confirmed
//	pending --confirm (over tolerance)----> disputed
//	disputed --resolve--------------------> resolved
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDisputed  Status = "disputed"
	StatusResolved  Status = "resolved"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDisputed, StatusResolved:
		return true
	}

	return false
}

// Settled reports whether the status satisfies a later stage's sequencing requirement.
// Both terminal states qualify.
func (s Status) Settled() bool {
	return s == StatusConfirmed || s == StatusResolved
}

// Handover is a single custody transfer of cash between two parties.
type Handover struct {
	ID                 uuid.UUID
	StationID          uuid.UUID
	StageType          StageType
	FromParty          uuid.UUID
	ToParty            uuid.UUID
	ExpectedAmount     decimal.Decimal
	ActualAmount       *decimal.Decimal
	Variance           *decimal.Decimal // ActualAmount - ExpectedAmount
	VariancePercentage *decimal.Decimal
	Status             Status
	PreviousHandoverID *uuid.UUID // weak link to the claimed prior-stage handover
	OccurredOn         time.Time
	ConfirmedAt        *time.Time
	ConfirmedBy        *uuid.UUID
	SourceShiftID      *uuid.UUID
	DisputeNote        string
	ResolutionNote     string
	ResolvedAt         *time.Time
	ResolvedBy         *uuid.UUID
	CreatedBy          uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
