package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 7, 1, hour, minute, 0, 0, time.Local)
}

func TestServiceWindow_End(t *testing.T) {
	w := NewServiceWindow(at(18, 0))

	assert.Equal(t, at(19, 30), w.End())
}

func TestServiceWindow_Overlaps(t *testing.T) {
	existing := NewServiceWindow(at(18, 0)) // occupies 18:00–19:30

	tests := []struct {
		name     string
		start    time.Time
		overlaps bool
	}{
		{"same start", at(18, 0), true},
		{"inside existing window", at(19, 0), true},
		{"straddles window start", at(17, 30), true},
		{"ends exactly at window start", at(16, 30), false},
		{"starts exactly at window end", at(19, 30), false},
		{"well before", at(15, 0), false},
		{"well after", at(21, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proposed := NewServiceWindow(tt.start)

			assert.Equal(t, tt.overlaps, proposed.Overlaps(existing))
			// The predicate is symmetric
			assert.Equal(t, tt.overlaps, existing.Overlaps(proposed))
		})
	}
}

func TestMeetsLeadTime(t *testing.T) {
	now := time.Date(2025, 6, 29, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		proposed time.Time
		want     bool
	}{
		{"exactly two days ahead", now.AddDate(0, 0, 2), true},
		{"two days and one minute ahead", now.AddDate(0, 0, 2).Add(time.Minute), true},
		{"one second short of two days", now.AddDate(0, 0, 2).Add(-time.Second), false},
		{"tomorrow", now.AddDate(0, 0, 1), false},
		{"in the past", now.AddDate(0, 0, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MeetsLeadTime(tt.proposed, now))
		})
	}
}

func TestWithinSeatingHours(t *testing.T) {
	tests := []struct {
		name string
		tod  time.Time
		want bool
	}{
		{"opening boundary 17:00", at(17, 0), true},
		{"last seating 21:30", at(21, 30), true},
		{"one minute before opening", at(16, 59), false},
		{"one minute after last seating", at(21, 31), false},
		{"one second after last seating", time.Date(2025, 7, 1, 21, 30, 1, 0, time.Local), false},
		{"mid-service", at(19, 15), true},
		{"lunchtime", at(12, 0), false},
		{"midnight", at(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinSeatingHours(tt.tod))
		})
	}
}
