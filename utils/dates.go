// utils/dates.go
package utils

import "time"

const day = 24 * time.Hour

// BeginningOfDay truncates t to midnight in its own location.
func BeginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts whole calendar days from start to end. Negative when
// end precedes start.
func DaysBetween(start, end time.Time) int {
	return int(BeginningOfDay(end).Sub(BeginningOfDay(start)) / day)
}
