package get_revenue

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/revenue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.ListRevenue(r.Context())
	if err != nil {
		h.logger.Error("GET /revenue - Failed to list revenue: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /revenue - Listed revenue for %d class(es)", len(response.Revenues))
	handlers.RespondJSON(w, http.StatusOK, response)
}
