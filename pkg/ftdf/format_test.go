package ftdf

import (
	"testing"
	"time"
)

func TestCalculateDuration(t *testing.T) {
	base := time.Date(2026, time.August, 30, 9, 0, 0, 0, ServiceLocation())

	testCases := []struct {
		name     string
		minutes  int
		expected string
	}{
		{name: "under an hour", minutes: 45, expected: "45分"},
		{name: "exactly an hour", minutes: 60, expected: "1時間0分"},
		{name: "hours and minutes", minutes: 145, expected: "2時間25分"},
		{name: "zero", minutes: 0, expected: "0分"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			end := base.Add(time.Duration(testCase.minutes) * time.Minute)

			if got := CalculateDuration(base, end); got != testCase.expected {
				t.Errorf("expected %s, got %s", testCase.expected, got)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	value := time.Date(2026, time.August, 30, 8, 5, 0, 0, ServiceLocation())

	if got := FormatTime(value); got != "08:05" {
		t.Errorf("expected 08:05, got %s", got)
	}
}
