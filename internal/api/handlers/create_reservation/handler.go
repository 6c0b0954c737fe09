package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты и времени, ожидается YYYY-MM-DD HH:MM:SS"
	msgInvalidInput       = "некорректные входные данные"
	msgBadDateTime        = "дата или время визита нарушают правила рассадки"
	msgBadPartySize       = "некорректное количество гостей"
	msgDinerUnknown       = "гость не зарегистрирован"
	msgRoomUnknown        = "зал не зарегистрирован"
	msgBothUnknown        = "ни гость, ни зал не зарегистрированы"
	msgRoomOverlap        = "зал уже занят в это время"
	msgDinerOverlap       = "у гостя уже есть бронь в это время"
	msgBothOverlap        = "и зал, и гость уже заняты в это время"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse datetime %q: %v", req.DateAndTime, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case: каждому бизнес-отказу свой стабильный код
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: room=%q, diner=%q", req.Room, req.Diner)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrInvalidDateTime):
			h.logger.Warn("POST /reservations - Invalid datetime: datetime=%s, room=%q", req.DateAndTime, req.Room)
			handlers.RespondCode(w, http.StatusBadRequest, handlers.CodeInvalidDateTime, msgBadDateTime)

		case errors.Is(err, createReservation.ErrInvalidPartySize):
			h.logger.Warn("POST /reservations - Invalid party size: party_size=%d, room=%q", req.PartySize, req.Room)
			handlers.RespondCode(w, http.StatusBadRequest, handlers.CodeInvalidPartySize, msgBadPartySize)

		case errors.Is(err, createReservation.ErrBothUnknown):
			h.logger.Warn("POST /reservations - Diner and room unknown: diner=%q, room=%q", req.Diner, req.Room)
			handlers.RespondCode(w, http.StatusNotFound, handlers.CodeBothUnknown, msgBothUnknown)

		case errors.Is(err, createReservation.ErrDinerUnknown):
			h.logger.Warn("POST /reservations - Diner unknown: diner=%q", req.Diner)
			handlers.RespondCode(w, http.StatusNotFound, handlers.CodeDinerUnknown, msgDinerUnknown)

		case errors.Is(err, createReservation.ErrRoomUnknown):
			h.logger.Warn("POST /reservations - Room unknown: room=%q", req.Room)
			handlers.RespondCode(w, http.StatusNotFound, handlers.CodeRoomUnknown, msgRoomUnknown)

		case errors.Is(err, createReservation.ErrBothOverlap):
			h.logger.Warn("POST /reservations - Room and diner double-booked: datetime=%s, room=%q, diner=%q",
				req.DateAndTime, req.Room, req.Diner)
			handlers.RespondCode(w, http.StatusConflict, handlers.CodeBothOverlap, msgBothOverlap)

		case errors.Is(err, createReservation.ErrRoomOverlap):
			h.logger.Warn("POST /reservations - Room double-booked: datetime=%s, room=%q", req.DateAndTime, req.Room)
			handlers.RespondCode(w, http.StatusConflict, handlers.CodeRoomOverlap, msgRoomOverlap)

		case errors.Is(err, createReservation.ErrDinerOverlap):
			h.logger.Warn("POST /reservations - Diner double-booked: datetime=%s, diner=%q", req.DateAndTime, req.Diner)
			handlers.RespondCode(w, http.StatusConflict, handlers.CodeDinerOverlap, msgDinerOverlap)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: datetime=%s, room=%q, diner=%q, error=%v",
				req.DateAndTime, req.Room, req.Diner, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: datetime=%s, room=%q, diner=%q, party_size=%d",
		response.DateAndTime, result.Room, result.Diner, result.PartySize)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
