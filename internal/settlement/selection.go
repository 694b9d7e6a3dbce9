package settlement

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/reading"
)

// SelectReadings checks the candidate readings for a settlement of stationID on date.
// requested is the caller's list of ids (nil when the station day's unlinked readings were
// loaded instead); found holds the rows that exist. Every candidate must exist, belong to the
// station day, be unlinked and have a consistent payment breakdown, otherwise the whole set is
// rejected. The accepted readings are returned ordered by recording time, then id.
func SelectReadings(stationID uuid.UUID, date time.Time, requested []uuid.UUID, found []reading.Reading) ([]reading.Reading, error) {
	byID := make(map[uuid.UUID]reading.Reading, len(found))
	for _, r := range found {
		byID[r.ID] = r
	}

	ids := requested
	if ids == nil {
		for _, r := range found {
			ids = append(ids, r.ID)
		}
	}

	var (
		selected []reading.Reading
		problems []ReadingProblem
		seen     = make(map[uuid.UUID]struct{}, len(ids))
	)

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}

		seen[id] = struct{}{}

		r, ok := byID[id]
		if !ok {
			problems = append(problems, ReadingProblem{ReadingID: id, Reason: ReasonNotFound})
			continue
		}

		if reason, ok := rejectReading(stationID, date, r); !ok {
			problems = append(problems, ReadingProblem{ReadingID: id, Reason: reason})
			continue
		}

		selected = append(selected, r)
	}

	if len(problems) > 0 || len(selected) == 0 {
		return nil, &InvalidReadingSetError{Problems: problems}
	}

	slices.SortFunc(selected, func(a, b reading.Reading) int {
		if c := a.RecordedAt.Compare(b.RecordedAt); c != 0 {
			return c
		}

		return slices.Compare(a.ID[:], b.ID[:])
	})

	return selected, nil
}

func rejectReading(stationID uuid.UUID, date time.Time, r reading.Reading) (Reason, bool) {
	switch {
	case r.StationID != stationID:
		return ReasonOtherStation, false
	case !r.SameDay(date):
		return ReasonOtherDate, false
	case r.Linked():
		return ReasonAlreadyLinked, false
	case !r.Consistent():
		return ReasonPaymentMismatch, false
	}

	return "", true
}

// ExpectedCash sums the cash portion of the readings.
func ExpectedCash(readings []reading.Reading) decimal.Decimal {
	total := decimal.Zero
	for _, r := range readings {
		total = total.Add(r.CashAmount)
	}

	return total
}
