package list_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("list_available_slots: invalid input data")

	// ErrRoomUnknown возвращается, когда зал не зарегистрирован
	ErrRoomUnknown = errors.New("list_available_slots: room is not registered")

	// ErrInternal возвращается при сбоях хранилища
	ErrInternal = errors.New("list_available_slots: internal error")
)
