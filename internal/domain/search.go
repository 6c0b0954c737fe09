package domain

// SearchOutcome is the three-variant result of a search keyed by
// (date-time, room). The variants are mutually exclusive and exhaustive:
// the parent room is unknown, the room exists but holds no matching
// booking, or matching records were found.
type SearchOutcome int

const (
	SearchRoomUnknown SearchOutcome = iota
	SearchEmpty
	SearchFound
)

// String returns the wire name of the outcome.
func (o SearchOutcome) String() string {
	switch o {
	case SearchRoomUnknown:
		return "room-unknown"
	case SearchEmpty:
		return "empty"
	case SearchFound:
		return "found"
	default:
		return "unknown"
	}
}
