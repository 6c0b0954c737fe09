package search_reservation

import (
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// SearchResponse HTTP response model
// Code различает три исхода: зал неизвестен / брони нет / бронь найдена
type SearchResponse struct {
	Code         string                    `json:"code"`
	Reservations []*models.ReservationView `json:"reservations,omitempty"`
}
