package reservations

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Exists(ctx context.Context, dtime types.DateTime, roomName string) (bool, error)
	FindByDateAndRoom(ctx context.Context, dtime types.DateTime, roomName string) ([]*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	Delete(ctx context.Context, dtime types.DateTime, roomName string) error
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
