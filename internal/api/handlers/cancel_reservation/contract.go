package cancel_reservation

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type ReservationsService interface {
	Cancel(ctx context.Context, dtime types.DateTime, roomName string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
