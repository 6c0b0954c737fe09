package models

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationView представление брони для HTTP слоя
type ReservationView struct {
	DateAndTime string `json:"dateAndTime"`
	Room        string `json:"room"`
	Diner       string `json:"diner"`
	PartySize   int    `json:"partySize"`
}

// ReservationListResponse список броней
type ReservationListResponse struct {
	Reservations []*ReservationView `json:"reservations"`
}

// SearchResult трёхвариантный результат поиска брони:
// зал не зарегистрирован / зал есть, брони нет / бронь найдена
type SearchResult struct {
	Outcome      domain.SearchOutcome
	Reservations []*ReservationView
}

// FromDomainReservation конвертирует domain модель в представление
func FromDomainReservation(r *domain.Reservation) *ReservationView {
	return &ReservationView{
		DateAndTime: r.DateAndTime.String(),
		Room:        r.Room,
		Diner:       r.Diner,
		PartySize:   r.PartySize,
	}
}

// FromDomainReservationList конвертирует слайс domain моделей
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	views := make([]*ReservationView, 0, len(list))
	for _, r := range list {
		views = append(views, FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: views}
}
