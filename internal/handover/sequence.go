package handover

import (
	"github.com/google/uuid"
)

// Scope narrows which prior-stage handovers can satisfy a requirement.
type Scope int

const (
	// ScopeStation accepts any settled prior handover at the same station.
	ScopeStation Scope = iota
	// ScopeStationParty additionally requires the prior handover to come from the same party.
	ScopeStationParty
)

// Requirement names the stage that must be settled before a handover can be created.
type Requirement struct {
	Stage StageType
	Scope Scope
}

// sequenceRules is the custody rule table. A nil requirement marks the first stage of the chain.
// Adding a stage means adding an entry here.
var sequenceRules = map[StageType]*Requirement{
	StageShiftCollection:   nil,
	StageEmployeeToManager: {Stage: StageShiftCollection, Scope: ScopeStationParty},
	StageManagerToOwner:    {Stage: StageEmployeeToManager, Scope: ScopeStation},
	StageDepositToBank:     {Stage: StageManagerToOwner, Scope: ScopeStation},
}

// PriorQuery selects the settled, unclaimed handover a new handover would link to.
type PriorQuery struct {
	StationID uuid.UUID
	Stage     StageType
	FromParty *uuid.UUID // nil when any party qualifies
}

// RequirementFor returns the requirement for stage, or nil when the stage starts a chain.
func RequirementFor(stage StageType) (*Requirement, error) {
	req, ok := sequenceRules[stage]
	if !ok {
		return nil, validationError("unknown stage %q", stage)
	}

	return req, nil
}

// Query builds the lookup for the prior handover of a new handover from fromParty at stationID.
func (r Requirement) Query(stationID, fromParty uuid.UUID) PriorQuery {
	q := PriorQuery{StationID: stationID, Stage: r.Stage}
	if r.Scope == ScopeStationParty {
		q.FromParty = &fromParty
	}

	return q
}

// CheckSequence decides whether a handover of stage from fromParty at stationID may be created
// given the candidate prior handover (nil when none was found).
func CheckSequence(stage StageType, stationID, fromParty uuid.UUID, prior *Handover) error {
	req, err := RequirementFor(stage)
	if err != nil {
		return err
	}

	if req == nil {
		return nil
	}

	violation := &SequenceViolationError{
		Stage:     stage,
		Required:  req.Stage,
		StationID: stationID,
		FromParty: fromParty,
	}

	if prior == nil {
		return violation
	}

	if prior.StageType != req.Stage || !prior.Status.Settled() || prior.StationID != stationID {
		return violation
	}

	if req.Scope == ScopeStationParty && prior.FromParty != fromParty {
		return violation
	}

	return nil
}
