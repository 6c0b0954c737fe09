package reports

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// DetailRepository интерфейс репозитория отчётных представлений
type DetailRepository interface {
	List(ctx context.Context) ([]*domain.ReservationDetail, error)
	FindByDateAndRoom(ctx context.Context, dtime types.DateTime, roomName string) ([]*domain.ReservationDetail, error)
	ListRevenue(ctx context.Context) ([]*domain.ClassRevenue, error)
}

// ReservationRepository интерфейс проверки существования брони
type ReservationRepository interface {
	Exists(ctx context.Context, dtime types.DateTime, roomName string) (bool, error)
}

// RoomRepository резолвер существования залов
type RoomRepository interface {
	ResolveID(ctx context.Context, name string) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
