package ftdf

import (
	"testing"
	"time"
)

func mustClockTime(t *testing.T, value string) ClockTime {
	t.Helper()

	parsed, err := ParseClockTime(value)
	if err != nil {
		t.Fatalf("bad clock time %q: %v", value, err)
	}

	return parsed
}

func TestTripIsValidOn(t *testing.T) {
	validFrom := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	validUntil := time.Date(2026, time.November, 30, 0, 0, 0, 0, time.UTC)

	bounded := &Trip{ValidFrom: validFrom, ValidUntil: &validUntil}
	openEnded := &Trip{ValidFrom: validFrom}
	weekdaysOnly := &Trip{
		ValidFrom:  validFrom,
		DaysOfWeek: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	}

	testCases := []struct {
		name     string
		trip     *Trip
		date     time.Time
		expected bool
	}{
		{name: "day before window", trip: bounded, date: time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), expected: false},
		{name: "first day of window", trip: bounded, date: validFrom, expected: true},
		{name: "last day of window", trip: bounded, date: validUntil, expected: true},
		{name: "day after window", trip: bounded, date: time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC), expected: false},
		{name: "open ended far future", trip: openEnded, date: time.Date(2030, time.June, 15, 0, 0, 0, 0, time.UTC), expected: true},
		{name: "open ended before start", trip: openEnded, date: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), expected: false},
		// 2026-08-31 is a Monday, 2026-08-30 a Sunday
		{name: "weekday restriction matches", trip: weekdaysOnly, date: time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), expected: true},
		{name: "weekday restriction excludes sunday", trip: weekdaysOnly, date: time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC), expected: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := testCase.trip.IsValidOn(testCase.date); got != testCase.expected {
				t.Errorf("expected %v, got %v", testCase.expected, got)
			}
		})
	}
}

func TestTripIsValidOnIgnoresTimeOfDay(t *testing.T) {
	validFrom := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	trip := &Trip{ValidFrom: validFrom}

	lateOnFirstDay := time.Date(2026, time.April, 1, 23, 45, 0, 0, ServiceLocation())
	if !trip.IsValidOn(lateOnFirstDay) {
		t.Error("a timestamp late on the first valid day should still match")
	}
}

func TestTripCrossesMidnight(t *testing.T) {
	overnight := &Trip{
		DepartureTime: mustClockTime(t, "23:30"),
		ArrivalTime:   mustClockTime(t, "01:45"),
	}
	daytime := &Trip{
		DepartureTime: mustClockTime(t, "09:00"),
		ArrivalTime:   mustClockTime(t, "11:25"),
	}

	if !overnight.CrossesMidnight() {
		t.Error("23:30 -> 01:45 should cross midnight")
	}
	if daytime.CrossesMidnight() {
		t.Error("09:00 -> 11:25 should not cross midnight")
	}

	if got := overnight.DurationMinutes(); got != 135 {
		t.Errorf("expected 135 minute overnight crossing, got %d", got)
	}
	if got := daytime.DurationMinutes(); got != 145 {
		t.Errorf("expected 145 minute sailing, got %d", got)
	}
}
