package statusfeed

import (
	"errors"
	"testing"
	"time"

	"github.com/okiferry/okiferry/pkg/ftdf"
)

var testNow = time.Date(2026, time.August, 30, 10, 0, 0, 0, ftdf.ServiceLocation())

func TestParseFeedDocument(t *testing.T) {
	payload := []byte(`{
		"service": "Ferry Oki",
		"updated": "2026-08-30T09:45:00+09:00",
		"alert": true,
		"status": "partial-cancel",
		"effective_from": "12:30",
		"title": "強風による欠航",
		"text": "12:30以降の便は欠航します"
	}`)

	status, err := ParseFeedDocument(payload, nil, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if status.ServiceName != "Ferry Oki" {
		t.Errorf("unexpected service name %q", status.ServiceName)
	}
	if !status.HasAlert {
		t.Error("expected an active alert")
	}
	if status.StatusCode != ftdf.StatusPartialCancel {
		t.Errorf("expected PartialCancel, got %v", status.StatusCode)
	}
	if status.EffectiveFromTime.String() != "12:30" {
		t.Errorf("expected effective-from 12:30, got %s", status.EffectiveFromTime)
	}
	if status.ModificationDateTime.Hour() != 9 || status.ModificationDateTime.Minute() != 45 {
		t.Errorf("expected the feed's updated timestamp, got %v", status.ModificationDateTime)
	}
}

func TestParseFeedDocumentExtraSailings(t *testing.T) {
	payload := []byte(`{
		"service": "Ferry Dozen",
		"alert": true,
		"status": "extra",
		"extra_sailings": [
			{"departure_port": "BEPPU", "arrival_port": "HISHIURA", "departure_time": "19:30", "arrival_time": "19:45"},
			{"departure_port": "HISHIURA", "arrival_port": "BEPPU", "departure_time": "20:00", "arrival_time": "20:15"}
		]
	}`)

	status, err := ParseFeedDocument(payload, nil, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(status.ExtraTrips) != 2 {
		t.Fatalf("expected 2 extra sailings, got %d", len(status.ExtraTrips))
	}

	first := status.ExtraTrips[0]
	if first.PrimaryIdentifier != "okiferry-trip-extra-Ferry Dozen-0" {
		t.Errorf("unexpected identifier %q", first.PrimaryIdentifier)
	}
	if !first.Synthetic {
		t.Error("extra sailings must be synthetic")
	}
	if first.BaseStatus != ftdf.StatusExtra {
		t.Errorf("expected Extra base status, got %v", first.BaseStatus)
	}
	if first.DeparturePortRef != "BEPPU" || first.ArrivalPortRef != "HISHIURA" {
		t.Errorf("unexpected ports %s -> %s", first.DeparturePortRef, first.ArrivalPortRef)
	}
	if first.DepartureTime.String() != "19:30" {
		t.Errorf("expected 19:30 departure, got %s", first.DepartureTime)
	}

	// Extras run only on the feed date.
	if !first.IsValidOn(testNow) {
		t.Error("extra sailing should be valid on the feed date")
	}
	if first.IsValidOn(testNow.AddDate(0, 0, 1)) {
		t.Error("extra sailing should not be valid the day after")
	}

	second := status.ExtraTrips[1]
	if second.PrimaryIdentifier != "okiferry-trip-extra-Ferry Dozen-1" {
		t.Errorf("unexpected identifier %q", second.PrimaryIdentifier)
	}
}

func TestParseFeedDocumentRejectsBadInput(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: `garbage`},
		{name: "missing service", payload: `{"status": "normal"}`},
		{name: "unknown status", payload: `{"service": "Ferry Oki", "status": "sideways"}`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := ParseFeedDocument([]byte(testCase.payload), nil, testNow); err == nil {
				t.Error("expected an error")
			}
		})
	}

	payload := `{"service": "Ferry Oki", "status": "partial-cancel", "effective_from": "25:00"}`
	if _, err := ParseFeedDocument([]byte(payload), nil, testNow); !errors.Is(err, ftdf.ErrClockTimeFormat) {
		t.Errorf("expected ErrClockTimeFormat, got %v", err)
	}
}
