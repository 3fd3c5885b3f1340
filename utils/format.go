package utils

import "time"

// FormatInstant renders an instant the way chat replies present it,
// e.g. "Monday, 05 January at 09:00 (-03)".
func FormatInstant(t time.Time, location *time.Location) string {
	return t.In(location).Format("Monday, 02 January at 15:04 (-07)")
}
