package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateTime     = "некорректный формат даты и времени, ожидается YYYY-MM-DD HH:MM:SS"
	msgRoomRequired        = "имя зала обязательно"
	msgReservationNotFound = "бронь не найдена"
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

// Handle POST /api/v1/reservations/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Room == "" {
		h.logger.Warn("POST /reservations/cancel - Room is empty")
		handlers.RespondBadRequest(w, msgRoomRequired)
		return
	}

	dtime, err := types.ParseDateTime(req.DateAndTime)
	if err != nil {
		h.logger.Warn("POST /reservations/cancel - Failed to parse datetime %q: %v", req.DateAndTime, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	if err := h.service.Cancel(r.Context(), dtime, req.Room); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/cancel - Reservation not found: datetime=%s, room=%q", req.DateAndTime, req.Room)
			handlers.RespondCode(w, http.StatusNotFound, handlers.CodeNotFound, msgReservationNotFound)

		default:
			h.logger.Error("POST /reservations/cancel - Failed to cancel reservation: datetime=%s, room=%q, error=%v",
				req.DateAndTime, req.Room, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/cancel - Reservation cancelled: datetime=%s, room=%q", req.DateAndTime, req.Room)
	handlers.RespondJSON(w, http.StatusOK, CancelResponse{Code: handlers.CodeSuccess})
}
