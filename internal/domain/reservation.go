package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Reservation represents a table booking. It is identified by the pair
// (DateAndTime, Room); there is no surrogate ID. A reservation is never
// updated in place: changes are modelled as cancel + re-add.
type Reservation struct {
	DateAndTime types.DateTime
	Room        string
	Diner       string
	PartySize   int

	CreatedAt time.Time
}

// Window returns the service window this reservation occupies.
func (r *Reservation) Window() ServiceWindow {
	return NewServiceWindow(r.DateAndTime.Time())
}

// ReservationsFilter optional filters for listing reservations.
// Nil fields mean "no restriction".
type ReservationsFilter struct {
	Room  *string
	Diner *string
}
