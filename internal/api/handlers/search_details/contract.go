package search_details

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/reports/models"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type ReportsService interface {
	SearchDetails(ctx context.Context, dtime types.DateTime, roomName string) (*models.SearchResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
