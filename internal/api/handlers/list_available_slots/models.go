package list_available_slots

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	listAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/list_available_slots"
)

// SlotView один слот рассадки для HTTP слоя
type SlotView struct {
	Start     string `json:"start"`
	Available bool   `json:"available"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Room  string     `json:"room"`
	Date  string     `json:"date"`
	Slots []SlotView `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotView, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotView{
			Start:     s.Start.String(),
			Available: s.Available,
		})
	}
	return &SlotsResponse{
		Room:  resp.Room,
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
