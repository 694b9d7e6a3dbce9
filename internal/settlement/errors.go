package settlement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound            = errors.New("settlement not found")
	ErrDuplicateSettlement = errors.New("settlement already recorded for station and date")
	ErrInvalidReadingSet   = errors.New("invalid reading set")
	ErrPaymentMismatch     = errors.New("reading payment breakdown does not match total")
	ErrValidation          = errors.New("invalid settlement request")
	// ErrReadingAlreadyLinked is returned by the store when a reading link was set concurrently.
	ErrReadingAlreadyLinked = errors.New("reading already linked to a settlement")
)

// Reason says why a reading cannot be part of a settlement.
type Reason string

const (
	ReasonNotFound        Reason = "not_found"
	ReasonOtherStation    Reason = "other_station"
	ReasonOtherDate       Reason = "other_date"
	ReasonAlreadyLinked   Reason = "already_linked"
	ReasonPaymentMismatch Reason = "payment_mismatch"
)

type ReadingProblem struct {
	ReadingID uuid.UUID
	Reason    Reason
}

// InvalidReadingSetError lists every rejected candidate reading. No problems means the set was empty.
type InvalidReadingSetError struct {
	Problems []ReadingProblem
}

func (e *InvalidReadingSetError) Error() string {
	if len(e.Problems) == 0 {
		return "invalid reading set: no readings to settle"
	}

	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, fmt.Sprintf("%s (%s)", p.ReadingID, p.Reason))
	}

	return "invalid reading set: " + strings.Join(parts, ", ")
}

func (e *InvalidReadingSetError) Is(target error) bool {
	if target == ErrInvalidReadingSet {
		return true
	}

	if target == ErrPaymentMismatch {
		for _, p := range e.Problems {
			if p.Reason == ReasonPaymentMismatch {
				return true
			}
		}
	}

	return false
}

// ReadingIDs returns the offending reading ids in the order they were found.
func (e *InvalidReadingSetError) ReadingIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(e.Problems))
	for _, p := range e.Problems {
		ids = append(ids, p.ReadingID)
	}

	return ids
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
