package variance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Override is a per-station threshold adjustment. Unset fields fall back to the defaults.
type Override struct {
	Absolute   decimal.NullDecimal
	Percentage decimal.NullDecimal
}

type OverrideSource interface {
	Override(ctx context.Context, stationID uuid.UUID, c Context) (*Override, error)
}

// Policy resolves the thresholds for a station in a given context.
type Policy struct {
	defaults  map[Context]Thresholds
	overrides OverrideSource
}

// NewPolicy creates a Policy. overrides may be nil, in which case only defaults apply.
func NewPolicy(defaults map[Context]Thresholds, overrides OverrideSource) *Policy {
	return &Policy{defaults: defaults, overrides: overrides}
}

func (p *Policy) Thresholds(ctx context.Context, stationID uuid.UUID, c Context) (Thresholds, error) {
	t, ok := p.defaults[c]
	if !ok {
		t = DefaultThresholds
	}

	if p.overrides == nil {
		return t, nil
	}

	o, err := p.overrides.Override(ctx, stationID, c)
	if err != nil {
		return Thresholds{}, fmt.Errorf("loading threshold override: %w", err)
	}

	if o == nil {
		return t, nil
	}

	if o.Absolute.Valid {
		t.Absolute = o.Absolute.Decimal
	}

	if o.Percentage.Valid {
		t.Percentage = o.Percentage.Decimal
	}

	return t, nil
}
