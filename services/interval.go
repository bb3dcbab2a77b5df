package services

import (
	"fmt"
	"time"

	"regulatory-consolidation/models"
)

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date; requests never carry a time of day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, models.ErrorValidation{Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", s)}
	}
	return t, nil
}

// All validity windows in this package are date-granular, half-open
// [from, to): the start day counts, the end day does not, and a nil end
// means open-ended.

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IntervalContains reports whether date falls inside [from, to).
func IntervalContains(from time.Time, to *time.Time, date time.Time) bool {
	d := truncateToDate(date)
	if truncateToDate(from).After(d) {
		return false
	}
	if to == nil {
		return true
	}
	return truncateToDate(*to).After(d)
}

// IntervalsOverlap reports whether [fromA, toA) and [fromB, toB) share at
// least one day.
func IntervalsOverlap(fromA time.Time, toA *time.Time, fromB time.Time, toB *time.Time) bool {
	a := truncateToDate(fromA)
	b := truncateToDate(fromB)
	if toB != nil && !a.Before(truncateToDate(*toB)) {
		return false
	}
	if toA != nil && !b.Before(truncateToDate(*toA)) {
		return false
	}
	return true
}
