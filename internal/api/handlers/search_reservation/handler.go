package search_reservation

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

const (
	msgInvalidDateTime = "некорректный формат даты и времени, ожидается YYYY-MM-DD HH:MM:SS"
	msgParamsRequired  = "параметры datetime и room обязательны"
	msgRoomUnknown     = "зал не зарегистрирован"
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

// Handle GET /api/v1/reservations/search?datetime=...&room=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDateTime := r.URL.Query().Get("datetime")
	roomName := r.URL.Query().Get("room")

	if rawDateTime == "" || roomName == "" {
		h.logger.Warn("GET /reservations/search - Missing query params: datetime=%q, room=%q", rawDateTime, roomName)
		handlers.RespondBadRequest(w, msgParamsRequired)
		return
	}

	dtime, err := types.ParseDateTime(rawDateTime)
	if err != nil {
		h.logger.Warn("GET /reservations/search - Failed to parse datetime %q: %v", rawDateTime, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.Search(r.Context(), dtime, roomName)
	if err != nil {
		h.logger.Error("GET /reservations/search - Search failed: datetime=%s, room=%q, error=%v", rawDateTime, roomName, err)
		handlers.RespondInternalError(w)
		return
	}

	// Трёхвариантный исход поиска
	switch result.Outcome {
	case domain.SearchRoomUnknown:
		h.logger.Warn("GET /reservations/search - Room unknown: room=%q", roomName)
		handlers.RespondCode(w, http.StatusNotFound, handlers.CodeRoomUnknown, msgRoomUnknown)

	case domain.SearchEmpty:
		h.logger.Info("GET /reservations/search - No reservation: datetime=%s, room=%q", rawDateTime, roomName)
		handlers.RespondJSON(w, http.StatusOK, SearchResponse{Code: handlers.CodeEmpty})

	default:
		h.logger.Info("GET /reservations/search - Found %d reservation(s): datetime=%s, room=%q",
			len(result.Reservations), rawDateTime, roomName)
		handlers.RespondJSON(w, http.StatusOK, SearchResponse{
			Code:         handlers.CodeFound,
			Reservations: result.Reservations,
		})
	}
}
