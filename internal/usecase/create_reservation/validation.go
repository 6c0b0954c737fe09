package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Ошибки клиента обнаруживаются до любого обращения к хранилищу
func validateRequest(req *Request) error {
	if req.DateAndTime.IsZero() {
		return fmt.Errorf("%w: dateAndTime is required", ErrInvalidInput)
	}

	if req.Room == "" {
		return fmt.Errorf("%w: room is required", ErrInvalidInput)
	}
	if len(req.Room) > domain.MaxNameLength {
		return fmt.Errorf("%w: room must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.Diner == "" {
		return fmt.Errorf("%w: diner is required", ErrInvalidInput)
	}
	if len(req.Diner) > domain.MaxNameLength {
		return fmt.Errorf("%w: diner must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	return nil
}

// validateSchedule временной гейт: правила даты/времени и размера группы.
// Порядок фиксирован - сначала единая проверка даты и времени, затем размер
// группы, чтобы запрос с обеими ошибками получил код даты/времени
func validateSchedule(dtime time.Time, now time.Time, partySize int) error {
	if !domain.MeetsLeadTime(dtime, now) || !domain.WithinSeatingHours(dtime) {
		return ErrInvalidDateTime
	}

	if partySize <= 0 {
		return ErrInvalidPartySize
	}

	return nil
}
