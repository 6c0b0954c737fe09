package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Service сервис поиска, отмены и листинга броней
// Создание брони - отдельный usecase со своим конвейером проверок
type Service struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		logger:          logger,
	}
}

// Search ищет бронь по времени и залу
// Результат трёхвариантный: зал неизвестен / брони нет / бронь найдена,
// чтобы вызывающий мог отличить "зал не существует" от "зал свободен"
func (s *Service) Search(ctx context.Context, dtime types.DateTime, roomName string) (*models.SearchResult, error) {
	s.logger.Info("Search: datetime=%s, room=%s", dtime, roomName)

	if _, err := s.roomRepo.ResolveID(ctx, roomName); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Search: room %q not registered", roomName)
			return &models.SearchResult{Outcome: domain.SearchRoomUnknown}, nil
		}
		s.logger.Error("Search: failed to resolve room %q: %v", roomName, err)
		return nil, fmt.Errorf("%w: Search - failed to resolve room: %v", ErrInternal, err)
	}

	exists, err := s.reservationRepo.Exists(ctx, dtime, roomName)
	if err != nil {
		s.logger.Error("Search: existence check failed: %v", err)
		return nil, fmt.Errorf("%w: Search - existence check failed: %v", ErrInternal, err)
	}
	if !exists {
		s.logger.Info("Search: no reservation at %s in room %q", dtime, roomName)
		return &models.SearchResult{Outcome: domain.SearchEmpty}, nil
	}

	found, err := s.reservationRepo.FindByDateAndRoom(ctx, dtime, roomName)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	views := make([]*models.ReservationView, 0, len(found))
	for _, r := range found {
		views = append(views, models.FromDomainReservation(r))
	}

	s.logger.Info("Search: found %d reservation(s) at %s in room %q", len(views), dtime, roomName)
	return &models.SearchResult{Outcome: domain.SearchFound, Reservations: views}, nil
}

// Cancel отменяет бронь по времени и залу (физическое удаление)
// Отмена несуществующей брони всегда возвращает ErrReservationNotFound
// и не имеет побочных эффектов
func (s *Service) Cancel(ctx context.Context, dtime types.DateTime, roomName string) error {
	s.logger.Info("Cancel: datetime=%s, room=%s", dtime, roomName)

	err := s.reservationRepo.Delete(ctx, dtime, roomName)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: no reservation at %s in room %q", dtime, roomName)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error: %v", err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation at %s in room %q", dtime, roomName)
	return nil
}

// List возвращает брони с опциональной фильтрацией по залу и гостю
func (s *Service) List(ctx context.Context, filter domain.ReservationsFilter) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations (room=%v, diner=%v)", filter.Room, filter.Diner)

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservation(s)", len(list))
	return models.FromDomainReservationList(list), nil
}
