package list_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
)

// UseCase use case для получения доступных слотов зала на день
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает слоты рассадки зала на указанную дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListAvailableSlots: room=%s, date=%s", req.Room, req.Date.Format("2006-01-02"))

	if req.Room == "" {
		return nil, fmt.Errorf("%w: room is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := uc.roomRepo.ResolveID(ctx, req.Room); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("ListAvailableSlots: room %q not registered", req.Room)
			return nil, ErrRoomUnknown
		}
		uc.logger.Error("ListAvailableSlots: failed to resolve room %q: %v", req.Room, err)
		return nil, fmt.Errorf("%w: failed to resolve room: %v", ErrInternal, err)
	}

	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := uc.reservationRepo.FindByRoomBetween(ctx, req.Room, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("ListAvailableSlots: failed to load bookings for room %q: %v", req.Room, err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	slots := buildSlots(dayStart, uc.timeProvider.Now(), bookings)

	uc.logger.Info("ListAvailableSlots: room=%s, date=%s, slots=%d",
		req.Room, dayStart.Format("2006-01-02"), len(slots))

	return &Response{
		Room:  req.Room,
		Date:  dayStart,
		Slots: slots,
	}, nil
}
