package models

import "time"

// Holiday is a finalized holiday span as shown to the user. StartDate and
// EndDate are inclusive calendar dates (midnight UTC, no time component).
// Instances are never mutated after reconciliation; the active list is
// replaced wholesale on each reload.
type Holiday struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time

	// TotalDays is EndDate - StartDate + 1.
	TotalDays int
	// DaysExclMakeup is TotalDays minus matched make-up workdays, floored at 0.
	DaysExclMakeup int
	// DaysExclMakeupWeekend further subtracts weekend days within the span,
	// floored at 0.
	DaysExclMakeupWeekend int
}

// Date truncates t to a calendar date at midnight UTC. All holiday date
// comparisons go through this so that wall-clock time and zone never leak
// into day arithmetic.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b (negative when
// b precedes a). Both arguments are normalized through Date first.
func DaysBetween(a, b time.Time) int {
	return int(Date(b).Sub(Date(a)).Hours() / 24)
}
