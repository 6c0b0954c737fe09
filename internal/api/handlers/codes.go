package handlers

// Стабильные коды результатов бронирования
// Контракт внешнего интерфейса: значения менять нельзя
const (
	CodeSuccess          = "success"
	CodeInvalidDateTime  = "invalid-datetime"
	CodeInvalidPartySize = "invalid-party-size"
	CodeDinerUnknown     = "diner-unknown"
	CodeRoomUnknown      = "room-unknown"
	CodeBothUnknown      = "both-unknown"
	CodeBothOverlap      = "both-overlap"
	CodeRoomOverlap      = "room-overlap"
	CodeDinerOverlap     = "diner-overlap"
	CodeInfraFault       = "infra-fault"
)

// Коды операции отмены
const (
	CodeNotFound = "not-found"
)

// Коды трёхвариантного поиска (room-unknown переиспользуется сверху)
const (
	CodeEmpty = "empty"
	CodeFound = "found"
)
