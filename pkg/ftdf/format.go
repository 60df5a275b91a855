package ftdf

import (
	"fmt"
	"time"
)

// FormatTime renders a timestamp as the HH:MM display form used throughout
// the timetable UI.
func FormatTime(value time.Time) string {
	return fmt.Sprintf("%02d:%02d", value.Hour(), value.Minute())
}

// CalculateDuration renders the span between two timestamps in the localized
// form existing callers expect: "45分" under an hour, "2時間25分" otherwise.
func CalculateDuration(start time.Time, end time.Time) string {
	minutes := int(end.Sub(start).Minutes())

	if minutes < 60 {
		return fmt.Sprintf("%d分", minutes)
	}

	return fmt.Sprintf("%d時間%d分", minutes/60, minutes%60)
}
