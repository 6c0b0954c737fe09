package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// RoomRepository резолвер существования залов
type RoomRepository interface {
	ResolveID(ctx context.Context, name string) (int64, error)
}

// DinerRepository резолвер существования гостей
type DinerRepository interface {
	ResolveID(ctx context.Context, name string) (int64, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, dtime types.DateTime, roomID, dinerID int64, partySize int) error
}

// DetailRepository интерфейс запросов пересечений по представлению all_details
type DetailRepository interface {
	FindRoomOverlaps(ctx context.Context, roomName string, window domain.ServiceWindow) ([]*domain.ReservationDetail, error)
	FindDinerOverlaps(ctx context.Context, dinerName string, window domain.ServiceWindow) ([]*domain.ReservationDetail, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
