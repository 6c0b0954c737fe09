package list_details

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

// Handle GET /api/v1/details
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.ListDetails(r.Context())
	if err != nil {
		h.logger.Error("GET /details - Failed to list details: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /details - Listed %d row(s)", len(response.Details))
	handlers.RespondJSON(w, http.StatusOK, response)
}
