// Package reading is the settlement-side view of pump meter readings.
//
// Readings are owned by the readings subsystem; settlement only reads the payment
// breakdown and sets the settlement link.
package reading

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Reading struct {
	ID           uuid.UUID
	StationID    uuid.UUID
	Date         time.Time
	RecordedAt   time.Time
	TotalAmount  decimal.Decimal
	CashAmount   decimal.Decimal
	OnlineAmount decimal.Decimal
	CreditAmount decimal.Decimal
	SettlementID *uuid.UUID
}

func (r Reading) Linked() bool {
	return r.SettlementID != nil
}

// Consistent reports whether the payment breakdown is non-negative and adds up to the sale total.
func (r Reading) Consistent() bool {
	for _, a := range []decimal.Decimal{r.TotalAmount, r.CashAmount, r.OnlineAmount, r.CreditAmount} {
		if a.IsNegative() {
			return false
		}
	}

	return r.CashAmount.Add(r.OnlineAmount).Add(r.CreditAmount).Equal(r.TotalAmount)
}

// SameDay reports whether the reading was taken on the given calendar date.
func (r Reading) SameDay(date time.Time) bool {
	return r.Date.Format(time.DateOnly) == date.Format(time.DateOnly)
}
