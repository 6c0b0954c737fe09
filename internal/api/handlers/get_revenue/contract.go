package get_revenue

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/reports/models"
)

type ReportsService interface {
	ListRevenue(ctx context.Context) (*models.RevenueListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
