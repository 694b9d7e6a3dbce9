// Package settlement reconciles the cash counted at the end of a station day against the cash
// portion of that day's meter readings.
package settlement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusRecorded    Status = "recorded"
	StatusUnderReview Status = "under_review"
)

const (
	DefaultHistoryLimit = 30
	MaxHistoryLimit     = 366
)

// Settlement is the end-of-day reconciliation for one station. At most one exists per
// station and date.
type Settlement struct {
	ID                 uuid.UUID
	StationID          uuid.UUID
	Date               time.Time
	ExpectedCash       decimal.Decimal // sum of the linked readings' cash amounts
	ActualCash         decimal.Decimal
	Variance           decimal.Decimal // ExpectedCash - ActualCash
	VariancePercentage decimal.Decimal
	Status             Status
	ReadingIDs         []uuid.UUID
	Note               string
	RecordedBy         uuid.UUID
	CreatedAt          time.Time
}
