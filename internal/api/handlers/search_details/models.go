package search_details

import (
	"github.com/m04kA/SMC-ReservationService/internal/service/reports/models"
)

// SearchResponse HTTP response model
// Code различает три исхода: зал неизвестен / брони нет / записи найдены
type SearchResponse struct {
	Code    string               `json:"code"`
	Details []*models.DetailView `json:"details,omitempty"`
}
