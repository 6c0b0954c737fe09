package list_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	listAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/list_available_slots"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateRequired = "параметр date обязателен"
	msgInvalidInput = "некорректные входные данные"
	msgRoomUnknown  = "зал не зарегистрирован"
)

type Handler struct {
	useCase ListAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ListAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{room}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomName := mux.Vars(r)["room"]

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /rooms/{room}/available-slots - Missing date param: room=%q", roomName)
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, rawDate, time.Local)
	if err != nil {
		h.logger.Warn("GET /rooms/{room}/available-slots - Failed to parse date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &listAvailableSlots.Request{
		Room: roomName,
		Date: date,
	})
	if err != nil {
		switch {
		case errors.Is(err, listAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{room}/available-slots - Invalid input: room=%q, date=%s", roomName, rawDate)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, listAvailableSlots.ErrRoomUnknown):
			h.logger.Warn("GET /rooms/{room}/available-slots - Room unknown: room=%q", roomName)
			handlers.RespondCode(w, http.StatusNotFound, handlers.CodeRoomUnknown, msgRoomUnknown)

		default:
			h.logger.Error("GET /rooms/{room}/available-slots - Failed to list slots: room=%q, date=%s, error=%v",
				roomName, rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{room}/available-slots - Listed %d slot(s): room=%q, date=%s",
		len(result.Slots), roomName, rawDate)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
