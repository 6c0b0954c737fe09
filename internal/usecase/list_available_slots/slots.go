package list_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// buildSlots строит слоты рассадки на день с шагом domain.SlotStep,
// от первой (17:00) до последней (21:30) посадки включительно.
// Слот доступен, если его 90-минутное окно не пересекает ни одну
// существующую бронь зала и он ещё бронируем по правилу двух дней
func buildSlots(date time.Time, now time.Time, bookings []*domain.Reservation) []Slot {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	slots := make([]Slot, 0)
	for offset := domain.FirstSeating; offset <= domain.LastSeating; offset += domain.SlotStep {
		start := dayStart.Add(offset)
		window := domain.NewServiceWindow(start)

		available := domain.MeetsLeadTime(start, now)
		if available {
			for _, b := range bookings {
				if window.Overlaps(b.Window()) {
					available = false
					break
				}
			}
		}

		slots = append(slots, Slot{
			Start:     types.NewDateTime(start),
			Available: available,
		})
	}

	return slots
}
