package create_reservation

import (
	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	DateAndTime string `json:"dateAndTime"` // "2025-07-01 18:00:00" или "2025-07-01 18:00"
	Room        string `json:"room"`
	Diner       string `json:"diner"`
	PartySize   int    `json:"partySize"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	Code        string `json:"code"`
	DateAndTime string `json:"dateAndTime"`
	WindowEnd   string `json:"windowEnd"`
	Room        string `json:"room"`
	Diner       string `json:"diner"`
	PartySize   int    `json:"partySize"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	// Парсим дату и время визита
	dtime, err := types.ParseDateTime(r.DateAndTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		DateAndTime: dtime,
		Room:        r.Room,
		Diner:       r.Diner,
		PartySize:   r.PartySize,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		Code:        handlers.CodeSuccess,
		DateAndTime: resp.DateAndTime.String(),
		WindowEnd:   resp.WindowEnd.String(),
		Room:        resp.Room,
		Diner:       resp.Diner,
		PartySize:   resp.PartySize,
	}
}
