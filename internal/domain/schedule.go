package domain

import "time"

// MeetsLeadTime reports whether t is at least MinLeadDays ahead of now.
// The boundary itself (exactly now + 2 days) is accepted.
func MeetsLeadTime(t, now time.Time) bool {
	return !t.Before(now.AddDate(0, 0, MinLeadDays))
}

// WithinSeatingHours reports whether the time-of-day of t falls inside
// [FirstSeating, LastSeating]. Both bounds are accepted; 21:30:01 is not.
func WithinSeatingHours(t time.Time) bool {
	h, m, s := t.Clock()
	tod := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
	return tod >= FirstSeating && tod <= LastSeating
}
