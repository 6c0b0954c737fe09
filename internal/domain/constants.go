package domain

import "time"

// Business rules of the omakase restaurant
const (
	// ServiceDuration is how long every sitting occupies its room
	ServiceDuration = 90 * time.Minute

	// MinLeadDays is the minimum advance notice for a reservation
	MinLeadDays = 2

	// FirstSeating is the earliest seating time of day (17:00)
	FirstSeating = 17 * time.Hour

	// LastSeating is the latest seating time of day (21:30, so the final
	// sitting ends by the 23:00 close)
	LastSeating = 21*time.Hour + 30*time.Minute

	// SlotStep is the granularity of the availability listing
	SlotStep = 30 * time.Minute
)

// Input limits
const (
	MaxNameLength = 50
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
