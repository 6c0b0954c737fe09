package list_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса списка слотов
type Request struct {
	Room string    // Имя зала
	Date time.Time // Дата (без времени)
}

// Slot один слот рассадки
type Slot struct {
	Start     types.DateTime // Начало слота
	Available bool           // Свободен ли слот (нет пересечений и проходит по сроку)
}

// Response модель ответа со слотами на день
type Response struct {
	Room  string
	Date  time.Time
	Slots []Slot
}
