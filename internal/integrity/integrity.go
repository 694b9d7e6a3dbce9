// Package integrity scans the custody chain for links that no longer hold.
//
// previous_handover_id is a weak reference without a foreign key, so nothing in the database
// stops a link from dangling or pointing at the wrong stage. The checker reports such rows.
package integrity

import (
	"github.com/google/uuid"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/handover"
)

type Problem string

const (
	// ProblemMissingLink marks a handover whose stage requires a prior handover but has no link.
	ProblemMissingLink Problem = "missing_link"
	// ProblemUnexpectedLink marks a chain-starting handover that links to something.
	ProblemUnexpectedLink  Problem = "unexpected_link"
	ProblemDangling        Problem = "dangling"
	ProblemWrongStage      Problem = "wrong_stage"
	ProblemUnsettledPrior  Problem = "unsettled_prior"
	ProblemStationMismatch Problem = "station_mismatch"
	ProblemPartyMismatch   Problem = "party_mismatch"
)

// Prior is the linked handover as found in the database.
type Prior struct {
	ID        uuid.UUID
	StationID uuid.UUID
	Stage     handover.StageType
	Status    handover.Status
	FromParty uuid.UUID
}

// Link is one handover and the row its previous_handover_id resolves to.
type Link struct {
	HandoverID uuid.UUID
	StationID  uuid.UUID
	Stage      handover.StageType
	FromParty  uuid.UUID
	PreviousID *uuid.UUID
	Prior      *Prior // nil when PreviousID is nil or does not resolve
}

type Finding struct {
	HandoverID uuid.UUID
	StationID  uuid.UUID
	Stage      handover.StageType
	PreviousID *uuid.UUID
	Problem    Problem
}

// Evaluate returns one finding per broken link, in input order.
func Evaluate(links []Link) []Finding {
	var findings []Finding

	for _, l := range links {
		if p, broken := evaluate(l); broken {
			findings = append(findings, Finding{
				HandoverID: l.HandoverID,
				StationID:  l.StationID,
				Stage:      l.Stage,
				PreviousID: l.PreviousID,
				Problem:    p,
			})
		}
	}

	return findings
}

func evaluate(l Link) (Problem, bool) {
	req, err := handover.RequirementFor(l.Stage)
	if err != nil {
		return ProblemWrongStage, true
	}

	if req == nil {
		if l.PreviousID != nil {
			return ProblemUnexpectedLink, true
		}

		return "", false
	}

	switch {
	case l.PreviousID == nil:
		return ProblemMissingLink, true
	case l.Prior == nil:
		return ProblemDangling, true
	case l.Prior.Stage != req.Stage:
		return ProblemWrongStage, true
	case !l.Prior.Status.Settled():
		return ProblemUnsettledPrior, true
	case l.Prior.StationID != l.StationID:
		return ProblemStationMismatch, true
	case req.Scope == handover.ScopeStationParty && l.Prior.FromParty != l.FromParty:
		return ProblemPartyMismatch, true
	}

	return "", false
}
