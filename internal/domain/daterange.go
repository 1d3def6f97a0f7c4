package domain

import "time"

const day = 24 * time.Hour

// DateRange inclusive range of calendar dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range of calendar dates (time of day is dropped)
// and fails with ErrInvalidDateRange if end is before start
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrMissingDates
	}

	start, end = DateOnly(start), DateOnly(end)
	if end.Before(start) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{Start: start, End: end}, nil
}

// Overlaps reports whether two inclusive ranges share at least one instant.
// Touching ranges (one ends the day the other starts) overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !other.Start.After(r.End)
}

// Days number of billable calendar days in the inclusive range, at least 1.
// 2024-06-01..2024-06-01 is one day, 2024-06-01..2024-06-03 is three.
func (r DateRange) Days() int {
	diff := DateOnly(r.End).Sub(DateOnly(r.Start))
	if diff < 0 {
		return 1
	}
	return int(diff/day) + 1
}

// DateOnly drops the time component, keeping the calendar date in UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
