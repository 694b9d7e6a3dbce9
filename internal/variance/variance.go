// Package variance classifies the difference between an expected and a counted cash amount.
package variance

import (
	"github.com/shopspring/decimal"
)

// Context selects which threshold set applies to a classification.
type Context string

const (
	ContextHandover   Context = "handover"
	ContextSettlement Context = "settlement"
)

var hundred = decimal.NewFromInt(100)

// Thresholds are the tolerances beyond which a variance becomes a dispute.
// Absolute is in currency units, Percentage is in percent of the expected amount.
type Thresholds struct {
	Absolute   decimal.Decimal
	Percentage decimal.Decimal
}

// DefaultThresholds is used when neither configuration nor a station override provides values.
var DefaultThresholds = Thresholds{
	Absolute:   decimal.NewFromInt(100),
	Percentage: decimal.NewFromInt(2),
}

// Result is the outcome of comparing an actual amount against an expected one.
type Result struct {
	Variance   decimal.Decimal
	Percentage decimal.Decimal
	IsDispute  bool
}

// Measure returns actual - expected and the absolute variance as a percentage of expected,
// rounded to two decimal places. The percentage is zero when nothing was expected.
func Measure(expected, actual decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	v, pct := measure(expected, actual)

	return v, pct.Round(2)
}

func measure(expected, actual decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	v := actual.Sub(expected)
	if expected.IsZero() {
		return v, decimal.Zero
	}

	return v, v.Abs().Div(expected.Abs()).Mul(hundred)
}

// Classify measures the variance and flags a dispute when either threshold is exceeded.
// Thresholds are compared against the exact percentage; only the reported one is rounded.
func Classify(expected, actual decimal.Decimal, t Thresholds) Result {
	v, pct := measure(expected, actual)

	return Result{
		Variance:   v,
		Percentage: pct.Round(2),
		IsDispute:  v.Abs().GreaterThan(t.Absolute) || pct.GreaterThan(t.Percentage),
	}
}
