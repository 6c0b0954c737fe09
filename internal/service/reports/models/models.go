package models

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// DetailView строка представления all_details для HTTP слоя
type DetailView struct {
	DateAndTime string  `json:"dateAndTime"`
	Room        string  `json:"room"`
	Diner       string  `json:"diner"`
	Phone       *string `json:"phone,omitempty"`
	ClassName   string  `json:"className"`
	PartySize   int     `json:"partySize"`
	Staff       *string `json:"staff,omitempty"`
	Allergy     string  `json:"allergy"`
	Bill        float64 `json:"bill"`
}

// DetailListResponse список строк представления
type DetailListResponse struct {
	Details []*DetailView `json:"details"`
}

// SearchResult трёхвариантный результат поиска по представлению:
// тот же паттерн, что и у поиска броней
type SearchResult struct {
	Outcome domain.SearchOutcome
	Details []*DetailView
}

// RevenueView строка представления total_revenue_by_class
type RevenueView struct {
	ClassName    string  `json:"className"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// RevenueListResponse выручка по классам меню
type RevenueListResponse struct {
	Revenues []*RevenueView `json:"revenues"`
}

// FromDomainDetail конвертирует domain модель в представление
func FromDomainDetail(d *domain.ReservationDetail) *DetailView {
	return &DetailView{
		DateAndTime: d.DateAndTime.String(),
		Room:        d.Room,
		Diner:       d.Diner,
		Phone:       d.Phone,
		ClassName:   d.ClassName,
		PartySize:   d.PartySize,
		Staff:       d.Staff,
		Allergy:     d.Allergy,
		Bill:        d.Bill,
	}
}

// FromDomainDetailList конвертирует слайс domain моделей
func FromDomainDetailList(list []*domain.ReservationDetail) *DetailListResponse {
	views := make([]*DetailView, 0, len(list))
	for _, d := range list {
		views = append(views, FromDomainDetail(d))
	}
	return &DetailListResponse{Details: views}
}

// FromDomainRevenueList конвертирует слайс domain моделей выручки
func FromDomainRevenueList(list []*domain.ClassRevenue) *RevenueListResponse {
	views := make([]*RevenueView, 0, len(list))
	for _, r := range list {
		views = append(views, &RevenueView{ClassName: r.ClassName, TotalRevenue: r.TotalRevenue})
	}
	return &RevenueListResponse{Revenues: views}
}
