package timetablecsv

import (
	"strings"
	"testing"
	"time"

	"github.com/okiferry/okiferry/pkg/ftdf"
)

const sampleTimetable = `trip_id,service,departure_port,arrival_port,departure_time,arrival_time,valid_from,valid_until,days_of_week,next_trip_id,base_status
okiferry-trip-oki-001,Ferry Oki,HONDO_SHICHIRUI,SAIGO,09:00,11:25,2026-04-01,,,okiferry-trip-oki-002,0
okiferry-trip-isokaze-001,Isokaze,BEPPU,KURII,17:40,18:05,2026-04-01,2026-11-30,Mon|Tue|Wed|Thu|Fri,,0
`

func TestTimetableCSVParseFile(t *testing.T) {
	var format TimetableCSV

	if err := format.ParseFile(strings.NewReader(sampleTimetable)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(format.rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(format.rows))
	}

	now := time.Now()

	trip, err := format.rows[0].toTrip(nil, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trip.PrimaryIdentifier != "okiferry-trip-oki-001" {
		t.Errorf("unexpected identifier %q", trip.PrimaryIdentifier)
	}
	if trip.DepartureTime.String() != "09:00" || trip.ArrivalTime.String() != "11:25" {
		t.Errorf("unexpected times %s -> %s", trip.DepartureTime, trip.ArrivalTime)
	}
	if trip.ValidUntil != nil {
		t.Error("expected an open-ended trip")
	}
	if trip.NextTripRef != "okiferry-trip-oki-002" {
		t.Errorf("unexpected next trip ref %q", trip.NextTripRef)
	}
	if len(trip.DaysOfWeek) != 0 {
		t.Errorf("expected no day-of-week restriction, got %v", trip.DaysOfWeek)
	}

	restricted, err := format.rows[1].toTrip(nil, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if restricted.ValidUntil == nil {
		t.Fatal("expected a bounded trip")
	}
	if got := restricted.ValidUntil.Format(ftdf.YearMonthDayFormat); got != "2026-11-30" {
		t.Errorf("unexpected valid-until %s", got)
	}
	if len(restricted.DaysOfWeek) != 5 {
		t.Errorf("expected 5 running days, got %d", len(restricted.DaysOfWeek))
	}
	if restricted.DaysOfWeek[0] != time.Monday {
		t.Errorf("expected Monday first, got %v", restricted.DaysOfWeek[0])
	}
}

func TestTimetableCSVRejectsBadTimes(t *testing.T) {
	var format TimetableCSV

	bad := `trip_id,service,departure_port,arrival_port,departure_time,arrival_time,valid_from,valid_until,days_of_week,next_trip_id,base_status
bad-trip,Ferry Oki,HONDO_SHICHIRUI,SAIGO,25:00,11:25,2026-04-01,,,,0
`

	if err := format.ParseFile(strings.NewReader(bad)); err == nil {
		t.Error("expected an error for an out-of-range departure time")
	}
}

func TestTimetableRowRejectsBadDates(t *testing.T) {
	row := &timetableRow{
		TripID:    "bad-trip",
		ValidFrom: "01/04/2026",
	}

	if _, err := row.toTrip(nil, time.Now()); err == nil {
		t.Error("expected an error for a malformed valid-from date")
	}
}
