package core

import (
	"testing"
	"time"
)

func TestMonthBounds(t *testing.T) {
	loc := time.UTC
	ref := time.Date(2024, 2, 17, 15, 4, 5, 0, loc)

	start := StartOfMonth(ref, loc)
	if !start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected start: %v", start)
	}
	end := EndOfMonth(ref, loc)
	if !end.Equal(time.Date(2024, 2, 29, 23, 59, 59, 999999999, loc)) {
		t.Fatalf("unexpected end: %v", end)
	}

	if !WithinMonth(start, ref, loc) || !WithinMonth(end, ref, loc) {
		t.Fatalf("month bounds must be inclusive")
	}
	if WithinMonth(end.Add(time.Nanosecond), ref, loc) {
		t.Fatalf("first instant of next month must be excluded")
	}
	if WithinMonth(start.Add(-time.Nanosecond), ref, loc) {
		t.Fatalf("last instant of previous month must be excluded")
	}
}

func TestSameDayUsesLocation(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	a := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC) // 00:30 on the 11th in Rome
	b := time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)

	if SameDay(a, b, time.UTC) {
		t.Fatalf("different UTC days reported as same")
	}
	if !SameDay(a, b, rome) {
		t.Fatalf("same Rome day reported as different")
	}
	if got := DateKey(a, rome); got != "2025-03-11" {
		t.Fatalf("unexpected date key %q", got)
	}
}

func TestParseDateAndMonth(t *testing.T) {
	d, err := ParseDate("2025-01-31", time.UTC)
	if err != nil || !d.Equal(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v (err=%v)", d, err)
	}
	m, err := ParseMonth("2025-07", time.UTC)
	if err != nil || MonthKey(m, time.UTC) != "2025-07" {
		t.Fatalf("unexpected month %v (err=%v)", m, err)
	}
	if _, err := ParseMonth("2025-13", time.UTC); err == nil {
		t.Fatalf("expected error for month 13")
	}
	if _, err := ParseDate("31/01/2025", time.UTC); err == nil {
		t.Fatalf("expected error for wrong layout")
	}
}
