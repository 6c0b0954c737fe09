package list_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations?room=...&diner=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var filter domain.ReservationsFilter
	if room := r.URL.Query().Get("room"); room != "" {
		filter.Room = &room
	}
	if diner := r.URL.Query().Get("diner"); diner != "" {
		filter.Diner = &diner
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list reservations: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Listed %d reservation(s)", len(response.Reservations))
	handlers.RespondJSON(w, http.StatusOK, response)
}
