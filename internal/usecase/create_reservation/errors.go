package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (пустые или слишком длинные имена), до обращения к хранилищу
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDateTime возвращается при нарушении правил даты/времени:
	// меньше двух дней до визита или начало вне окна 17:00-21:30
	ErrInvalidDateTime = errors.New("create_reservation: invalid date or time")

	// ErrInvalidPartySize возвращается при размере группы <= 0
	ErrInvalidPartySize = errors.New("create_reservation: invalid party size")

	// ErrDinerUnknown возвращается, когда гость не зарегистрирован
	ErrDinerUnknown = errors.New("create_reservation: diner is not registered")

	// ErrRoomUnknown возвращается, когда зал не зарегистрирован
	ErrRoomUnknown = errors.New("create_reservation: room is not registered")

	// ErrBothUnknown возвращается, когда не зарегистрированы ни гость, ни зал
	ErrBothUnknown = errors.New("create_reservation: neither diner nor room is registered")

	// ErrRoomOverlap возвращается, когда зал уже занят в этом окне
	ErrRoomOverlap = errors.New("create_reservation: room is double-booked")

	// ErrDinerOverlap возвращается, когда у гостя уже есть бронь в этом окне
	ErrDinerOverlap = errors.New("create_reservation: diner is double-booked")

	// ErrBothOverlap возвращается, когда заняты и зал, и гость
	ErrBothOverlap = errors.New("create_reservation: room and diner are both double-booked")

	// ErrInternal возвращается при сбоях хранилища
	ErrInternal = errors.New("create_reservation: internal error")
)
