package handover

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("handover not found")
	ErrInvalidState      = errors.New("handover is not in a valid state for this operation")
	ErrSequenceViolation = errors.New("no unclaimed confirmed handover of the required prior stage")
	ErrValidation        = errors.New("invalid handover request")
	// ErrChainConflict is returned when the prior handover was claimed concurrently by another handover.
	ErrChainConflict = errors.New("prior handover already claimed")
	// ErrUnresolvedRecipient is returned when no receiving party can be determined for the stage.
	ErrUnresolvedRecipient = errors.New("receiving party could not be resolved")
)

// SequenceViolationError reports the stage that must be confirmed before Stage can be created.
type SequenceViolationError struct {
	Stage     StageType
	Required  StageType
	StationID uuid.UUID
	FromParty uuid.UUID
}

func (e *SequenceViolationError) Error() string {
	return fmt.Sprintf("cannot create %s: no unclaimed confirmed %s handover for station %s", e.Stage, e.Required, e.StationID)
}

func (e *SequenceViolationError) Is(target error) bool {
	return target == ErrSequenceViolation
}

// StateError reports an operation attempted on a handover in the wrong status.
type StateError struct {
	ID     uuid.UUID
	Op     string
	Status Status
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s handover %s in status %s", e.Op, e.ID, e.Status)
}

func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
