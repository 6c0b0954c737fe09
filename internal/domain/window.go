package domain

import "time"

// ServiceWindow is the half-open interval [Start, Start+ServiceDuration)
// a sitting occupies for conflict detection.
type ServiceWindow struct {
	Start time.Time
}

// NewServiceWindow builds the service window starting at t.
func NewServiceWindow(t time.Time) ServiceWindow {
	return ServiceWindow{Start: t}
}

// End returns the exclusive end of the window.
func (w ServiceWindow) End() time.Time {
	return w.Start.Add(ServiceDuration)
}

// Overlaps reports whether two service windows intersect.
// Half-open test: [s1,e1) and [s2,e2) overlap iff s1 < e2 && s2 < e1,
// so back-to-back sittings (one ending exactly when the next starts)
// do not conflict.
func (w ServiceWindow) Overlaps(other ServiceWindow) bool {
	return w.Start.Before(other.End()) && other.Start.Before(w.End())
}
