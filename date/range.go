package date

import "fmt"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range between two dates, swapping them if needed so
// that From is never after To.
func NewRange(a, b Date) Range {
	if a.After(b) {
		a, b = b, a
	}
	return Range{From: a, To: b}
}

// LastDays returns the range covering the n calendar days ending at 'to'
// (boundaries included).
func LastDays(to Date, n int) Range {
	return Range{From: to.Add(-n), To: to}
}

// Contains returns true if the date is included in the range (boundaries included).
func (r Range) Contains(day Date) bool { return !day.Before(r.From) && !day.After(r.To) }

// Days returns the number of calendar days between From and To.
func (r Range) Days() int {
	return int(r.To.time().Sub(r.From.time()) / Day)
}

// String formats the range as "2026-01-06 to 2026-01-12".
func (r Range) String() string { return fmt.Sprintf("%s to %s", r.From, r.To) }

// Identifier computes a compact filename-safe identifier for the range.
func (r Range) Identifier() string {
	if r.From == r.To {
		return r.From.String()
	}
	return fmt.Sprintf("%s_%s", r.From, r.To)
}
