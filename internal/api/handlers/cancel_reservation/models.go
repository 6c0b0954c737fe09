package cancel_reservation

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	DateAndTime string `json:"dateAndTime"` // "2025-07-01 18:00:00"
	Room        string `json:"room"`
}

// CancelResponse HTTP response model
type CancelResponse struct {
	Code string `json:"code"`
}
