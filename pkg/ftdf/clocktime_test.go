package ftdf

import (
	"errors"
	"testing"
)

func TestParseClockTime(t *testing.T) {
	testCases := []struct {
		input    string
		expected ClockTime
		wantErr  bool
	}{
		{input: "00:00", expected: 0},
		{input: "09:05", expected: 9*60 + 5},
		{input: "23:59", expected: 23*60 + 59},
		{input: "0:30", expected: 30},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "-1:00", wantErr: true},
		{input: "12:-5", wantErr: true},
		{input: "1230", wantErr: true},
		{input: "12:30:00", wantErr: true},
		{input: "ab:cd", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.input, func(t *testing.T) {
			parsed, err := ParseClockTime(testCase.input)

			if testCase.wantErr {
				if !errors.Is(err, ErrClockTimeFormat) {
					t.Fatalf("expected ErrClockTimeFormat, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if parsed != testCase.expected {
				t.Errorf("expected %d, got %d", testCase.expected, parsed)
			}
		})
	}
}

func TestClockTimeString(t *testing.T) {
	testCases := []struct {
		value    ClockTime
		expected string
	}{
		{value: 0, expected: "00:00"},
		{value: 9*60 + 5, expected: "09:05"},
		{value: 23*60 + 59, expected: "23:59"},
	}

	for _, testCase := range testCases {
		if got := testCase.value.String(); got != testCase.expected {
			t.Errorf("expected %s, got %s", testCase.expected, got)
		}
	}
}

func TestClockTimeCompare(t *testing.T) {
	morning, _ := ParseClockTime("09:00")
	evening, _ := ParseClockTime("21:00")

	if morning.Compare(evening) != -1 {
		t.Error("expected 09:00 < 21:00")
	}
	if evening.Compare(morning) != 1 {
		t.Error("expected 21:00 > 09:00")
	}
	if morning.Compare(morning) != 0 {
		t.Error("expected 09:00 == 09:00")
	}
}

func TestClockTimeDurationTo(t *testing.T) {
	testCases := []struct {
		name     string
		from     string
		to       string
		expected int
	}{
		{name: "same day", from: "09:00", to: "11:25", expected: 145},
		{name: "zero", from: "12:00", to: "12:00", expected: 0},
		{name: "over midnight", from: "23:30", to: "01:15", expected: 105},
		{name: "almost full day", from: "12:00", to: "11:59", expected: 1439},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			from, _ := ParseClockTime(testCase.from)
			to, _ := ParseClockTime(testCase.to)

			if got := from.DurationTo(to); got != testCase.expected {
				t.Errorf("expected %d minutes, got %d", testCase.expected, got)
			}
		})
	}
}

func TestClockTimeJSONRoundTrip(t *testing.T) {
	value, _ := ParseClockTime("14:35")

	encoded, err := value.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(encoded) != `"14:35"` {
		t.Errorf("expected \"14:35\", got %s", encoded)
	}

	var decoded ClockTime
	if err := decoded.UnmarshalJSON(encoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded != value {
		t.Errorf("expected %d after round trip, got %d", value, decoded)
	}

	if err := decoded.UnmarshalJSON([]byte(`"25:00"`)); !errors.Is(err, ErrClockTimeFormat) {
		t.Errorf("expected ErrClockTimeFormat for invalid JSON value, got %v", err)
	}
}
