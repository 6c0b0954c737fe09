package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	dinerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/diner"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UseCase use case для создания брони
type UseCase struct {
	reservationRepo ReservationRepository
	detailRepo      DetailRepository
	roomRepo        RoomRepository
	dinerRepo       DinerRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	detailRepo DetailRepository,
	roomRepo RoomRepository,
	dinerRepo DinerRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		detailRepo:      detailRepo,
		roomRepo:        roomRepo,
		dinerRepo:       dinerRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
//
// Порядок проверок фиксирован и определяет код отказа при нескольких
// одновременных нарушениях: существование (гость+зал, гость, зал), затем
// временной гейт (дата/время, размер группы), затем пересечения (оба, зал,
// гость). Резолв, проверка пересечений и вставка выполняются в одной
// сериализуемой транзакции, чтобы два одновременных запроса не прошли
// проверку до коммита друг друга
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: room=%s, diner=%s, datetime=%s, party=%d",
		req.Room, req.Diner, req.DateAndTime, req.PartySize)

	// 1. Валидация входных данных (до обращения к хранилищу)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время инжектится провайдером, а не берётся внутри проверок
	now := uc.timeProvider.Now()

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3. Резолвим гостя и зал; отсутствие - бизнес-отказ, не сбой
		dinerID, err := uc.dinerRepo.ResolveID(txCtx, req.Diner)
		dinerMissing := errors.Is(err, dinerRepo.ErrDinerNotFound)
		if err != nil && !dinerMissing {
			uc.logger.Error("CreateReservation: failed to resolve diner %q: %v", req.Diner, err)
			return fmt.Errorf("%w: failed to resolve diner: %v", ErrInternal, err)
		}

		roomID, err := uc.roomRepo.ResolveID(txCtx, req.Room)
		roomMissing := errors.Is(err, roomRepo.ErrRoomNotFound)
		if err != nil && !roomMissing {
			uc.logger.Error("CreateReservation: failed to resolve room %q: %v", req.Room, err)
			return fmt.Errorf("%w: failed to resolve room: %v", ErrInternal, err)
		}

		switch {
		case dinerMissing && roomMissing:
			uc.logger.Warn("CreateReservation: diner %q and room %q not registered", req.Diner, req.Room)
			return ErrBothUnknown
		case dinerMissing:
			uc.logger.Warn("CreateReservation: diner %q not registered", req.Diner)
			return ErrDinerUnknown
		case roomMissing:
			uc.logger.Warn("CreateReservation: room %q not registered", req.Room)
			return ErrRoomUnknown
		}

		// 4. Временной гейт
		if err := validateSchedule(req.DateAndTime.Time(), now, req.PartySize); err != nil {
			uc.logger.Warn("CreateReservation: schedule validation failed: %v", err)
			return err
		}

		// 5. Проверка пересечений окон обслуживания, отдельно по залу и по гостю
		window := domain.NewServiceWindow(req.DateAndTime.Time())

		roomOverlaps, err := uc.detailRepo.FindRoomOverlaps(txCtx, req.Room, window)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check room overlaps: %v", err)
			return fmt.Errorf("%w: failed to check room overlaps: %v", ErrInternal, err)
		}

		dinerOverlaps, err := uc.detailRepo.FindDinerOverlaps(txCtx, req.Diner, window)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check diner overlaps: %v", err)
			return fmt.Errorf("%w: failed to check diner overlaps: %v", ErrInternal, err)
		}

		switch {
		case len(roomOverlaps) > 0 && len(dinerOverlaps) > 0:
			uc.logger.Warn("CreateReservation: room %q and diner %q are both double-booked at %s",
				req.Room, req.Diner, req.DateAndTime)
			return ErrBothOverlap
		case len(roomOverlaps) > 0:
			uc.logger.Warn("CreateReservation: room %q is double-booked at %s", req.Room, req.DateAndTime)
			return ErrRoomOverlap
		case len(dinerOverlaps) > 0:
			uc.logger.Warn("CreateReservation: diner %q is double-booked at %s", req.Diner, req.DateAndTime)
			return ErrDinerOverlap
		}

		// 6. Все проверки пройдены - сохраняем бронь
		if err := uc.reservationRepo.Create(txCtx, req.DateAndTime, roomID, dinerID, req.PartySize); err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		// Сбой самой транзакции (begin/commit) тоже инфраструктурный
		if !isBusinessError(err) && !errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateReservation: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation room=%s, datetime=%s",
		req.Room, req.DateAndTime)

	return &Response{
		DateAndTime: req.DateAndTime,
		WindowEnd:   types.NewDateTime(domain.NewServiceWindow(req.DateAndTime.Time()).End()),
		Room:        req.Room,
		Diner:       req.Diner,
		PartySize:   req.PartySize,
	}, nil
}

// isBusinessError сообщает, является ли ошибка ожидаемым бизнес-отказом
func isBusinessError(err error) bool {
	for _, target := range []error{
		ErrInvalidInput,
		ErrInvalidDateTime,
		ErrInvalidPartySize,
		ErrDinerUnknown,
		ErrRoomUnknown,
		ErrBothUnknown,
		ErrRoomOverlap,
		ErrDinerOverlap,
		ErrBothOverlap,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
