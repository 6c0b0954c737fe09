package list_details

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/reports/models"
)

type ReportsService interface {
	ListDetails(ctx context.Context) (*models.DetailListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
