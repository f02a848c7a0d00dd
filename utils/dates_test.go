package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeginningOfDay(t *testing.T) {
	loc := time.FixedZone("TST", -5*3600)
	in := time.Date(2026, time.March, 14, 17, 45, 30, 999, loc)
	out := BeginningOfDay(in)

	assert.Equal(t, time.Date(2026, time.March, 14, 0, 0, 0, 0, loc), out)
	assert.Equal(t, loc, out.Location())
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		days  int
	}{
		{"same day", base, base.Add(23 * time.Hour), 0},
		{"next day across midnight", base.Add(23 * time.Hour), base.Add(25 * time.Hour), 1},
		{"a week", base, base.AddDate(0, 0, 7), 7},
		{"end before start", base.AddDate(0, 0, 3), base, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.days, DaysBetween(tt.start, tt.end))
		})
	}
}
