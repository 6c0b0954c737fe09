package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-ReservationService/internal/service/reports/models"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Service сервис отчётов: плоское представление броней и выручка по классам
type Service struct {
	detailRepo      DetailRepository
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(
	detailRepo DetailRepository,
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	logger Logger,
) *Service {
	return &Service{
		detailRepo:      detailRepo,
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		logger:          logger,
	}
}

// ListDetails возвращает все строки представления all_details
func (s *Service) ListDetails(ctx context.Context) (*models.DetailListResponse, error) {
	s.logger.Info("ListDetails: fetching all details")

	details, err := s.detailRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListDetails: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListDetails - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListDetails: successfully fetched %d row(s)", len(details))
	return models.FromDomainDetailList(details), nil
}

// SearchDetails ищет строки представления по времени и залу
// Тот же трёхвариантный результат, что и у поиска броней: зал неизвестен /
// брони нет / записи найдены
func (s *Service) SearchDetails(ctx context.Context, dtime types.DateTime, roomName string) (*models.SearchResult, error) {
	s.logger.Info("SearchDetails: datetime=%s, room=%s", dtime, roomName)

	if _, err := s.roomRepo.ResolveID(ctx, roomName); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("SearchDetails: room %q not registered", roomName)
			return &models.SearchResult{Outcome: domain.SearchRoomUnknown}, nil
		}
		s.logger.Error("SearchDetails: failed to resolve room %q: %v", roomName, err)
		return nil, fmt.Errorf("%w: SearchDetails - failed to resolve room: %v", ErrInternal, err)
	}

	exists, err := s.reservationRepo.Exists(ctx, dtime, roomName)
	if err != nil {
		s.logger.Error("SearchDetails: existence check failed: %v", err)
		return nil, fmt.Errorf("%w: SearchDetails - existence check failed: %v", ErrInternal, err)
	}
	if !exists {
		s.logger.Info("SearchDetails: no reservation at %s in room %q", dtime, roomName)
		return &models.SearchResult{Outcome: domain.SearchEmpty}, nil
	}

	details, err := s.detailRepo.FindByDateAndRoom(ctx, dtime, roomName)
	if err != nil {
		s.logger.Error("SearchDetails: repository error: %v", err)
		return nil, fmt.Errorf("%w: SearchDetails - repository error: %v", ErrInternal, err)
	}

	views := make([]*models.DetailView, 0, len(details))
	for _, d := range details {
		views = append(views, models.FromDomainDetail(d))
	}

	s.logger.Info("SearchDetails: found %d row(s) at %s in room %q", len(views), dtime, roomName)
	return &models.SearchResult{Outcome: domain.SearchFound, Details: views}, nil
}

// ListRevenue возвращает выручку по классам меню
func (s *Service) ListRevenue(ctx context.Context) (*models.RevenueListResponse, error) {
	s.logger.Info("ListRevenue: fetching revenue by class")

	revenues, err := s.detailRepo.ListRevenue(ctx)
	if err != nil {
		s.logger.Error("ListRevenue: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRevenue - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRevenue: successfully fetched %d class(es)", len(revenues))
	return models.FromDomainRevenueList(revenues), nil
}
