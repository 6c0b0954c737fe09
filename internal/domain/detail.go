package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// ReservationDetail is one row of the all_details reporting view: the
// reservation joined with its room, diner, price class, staff and allergy
// data, plus the computed bill.
type ReservationDetail struct {
	DateAndTime types.DateTime
	Room        string
	Diner       string
	Phone       *string
	ClassName   string
	PartySize   int
	Staff       *string
	Allergy     string
	Bill        float64
}

// ClassRevenue is one row of the total_revenue_by_class reporting view.
type ClassRevenue struct {
	ClassName    string
	TotalRevenue float64
}
