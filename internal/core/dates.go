package core

import "time"

const (
	// DateKeyLayout formats calendar days, e.g. "2025-01-31".
	DateKeyLayout = "2006-01-02"
	// MonthKeyLayout formats calendar months, e.g. "2025-01".
	MonthKeyLayout = "2006-01"
)

// StartOfMonth returns the first instant of t's month in loc.
func StartOfMonth(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}

// EndOfMonth returns the last instant of t's month in loc.
func EndOfMonth(t time.Time, loc *time.Location) time.Time {
	return StartOfMonth(t, loc).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// StartOfDay returns midnight of t's day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// WithinMonth reports whether t lies in the inclusive interval
// [StartOfMonth(month), EndOfMonth(month)].
func WithinMonth(t, month time.Time, loc *time.Location) bool {
	start := StartOfMonth(month, loc)
	end := EndOfMonth(month, loc)
	return !t.Before(start) && !t.After(end)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// DateKey formats t's calendar day in loc.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateKeyLayout)
}

// MonthKey formats t's calendar month in loc.
func MonthKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(MonthKeyLayout)
}

// ParseDate parses a YYYY-MM-DD day as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateKeyLayout, s, loc)
}

// ParseMonth parses a YYYY-MM month as its first instant in loc.
func ParseMonth(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(MonthKeyLayout, s, loc)
}
