package ftdf

import "testing"

func TestEffectiveStatusNoAlert(t *testing.T) {
	trip := &Trip{BaseStatus: StatusNormal, DepartureTime: mustClockTime(t, "09:00")}

	if got := trip.EffectiveStatus(nil); got != StatusNormal {
		t.Errorf("nil advisory should keep the scheduled status, got %v", got)
	}

	cleared := &OperationalStatus{HasAlert: false, StatusCode: StatusCancelled}
	if got := trip.EffectiveStatus(cleared); got != StatusNormal {
		t.Errorf("cleared advisory should keep the scheduled status, got %v", got)
	}
}

func TestEffectiveStatusFullCancellation(t *testing.T) {
	advisory := &OperationalStatus{HasAlert: true, StatusCode: StatusCancelled}

	trip := &Trip{BaseStatus: StatusNormal, DepartureTime: mustClockTime(t, "09:00")}
	if got := trip.EffectiveStatus(advisory); got != StatusCancelled {
		t.Errorf("expected Cancelled, got %v", got)
	}
}

func TestEffectiveStatusPartialCancelBoundary(t *testing.T) {
	advisory := &OperationalStatus{
		HasAlert:          true,
		StatusCode:        StatusPartialCancel,
		EffectiveFromTime: mustClockTime(t, "12:30"),
	}

	testCases := []struct {
		name      string
		departure string
		expected  StatusCode
	}{
		{name: "departs well before", departure: "09:00", expected: StatusNormal},
		{name: "departs one minute before", departure: "12:29", expected: StatusNormal},
		{name: "departs exactly at boundary", departure: "12:30", expected: StatusCancelled},
		{name: "departs one minute after", departure: "12:31", expected: StatusCancelled},
		{name: "departs late evening", departure: "21:00", expected: StatusCancelled},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			trip := &Trip{
				BaseStatus:    StatusNormal,
				DepartureTime: mustClockTime(t, testCase.departure),
			}

			if got := trip.EffectiveStatus(advisory); got != testCase.expected {
				t.Errorf("expected %v, got %v", testCase.expected, got)
			}
		})
	}
}

func TestEffectiveStatusPartialCancelFromMidnight(t *testing.T) {
	// EffectiveFromTime 00:00 cancels the whole day, the boundary being
	// inclusive.
	advisory := &OperationalStatus{
		HasAlert:          true,
		StatusCode:        StatusPartialCancel,
		EffectiveFromTime: 0,
	}

	trip := &Trip{BaseStatus: StatusNormal, DepartureTime: 0}
	if got := trip.EffectiveStatus(advisory); got != StatusCancelled {
		t.Errorf("expected a 00:00 departure to be cancelled, got %v", got)
	}
}

func TestEffectiveStatusChanged(t *testing.T) {
	advisory := &OperationalStatus{HasAlert: true, StatusCode: StatusChanged}

	trip := &Trip{BaseStatus: StatusNormal, DepartureTime: mustClockTime(t, "09:00")}
	if got := trip.EffectiveStatus(advisory); got != StatusChanged {
		t.Errorf("expected Changed, got %v", got)
	}
}

func TestEffectiveStatusSyntheticTrip(t *testing.T) {
	// Synthetic sailings always report Extra, even under a cancellation
	// advisory for the same service.
	advisory := &OperationalStatus{HasAlert: true, StatusCode: StatusCancelled}

	trip := &Trip{Synthetic: true, DepartureTime: mustClockTime(t, "15:00")}
	if got := trip.EffectiveStatus(advisory); got != StatusExtra {
		t.Errorf("expected Extra, got %v", got)
	}
}

func TestExtraTripIdentifier(t *testing.T) {
	if got := ExtraTripIdentifier("Ferry Dozen", 2); got != "okiferry-trip-extra-Ferry Dozen-2" {
		t.Errorf("unexpected identifier %q", got)
	}
}

func TestStatusCodeString(t *testing.T) {
	testCases := []struct {
		code     StatusCode
		expected string
	}{
		{code: StatusNormal, expected: "Normal"},
		{code: StatusCancelled, expected: "Cancelled"},
		{code: StatusPartialCancel, expected: "PartialCancel"},
		{code: StatusChanged, expected: "Changed"},
		{code: StatusExtra, expected: "Extra"},
	}

	for _, testCase := range testCases {
		if got := testCase.code.String(); got != testCase.expected {
			t.Errorf("expected %s, got %s", testCase.expected, got)
		}
	}
}
