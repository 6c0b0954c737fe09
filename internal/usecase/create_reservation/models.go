package create_reservation

import (
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание брони
type Request struct {
	DateAndTime types.DateTime // Дата и время визита (секундная точность)
	Room        string         // Имя зала
	Diner       string         // Имя гостя
	PartySize   int            // Количество гостей
}

// Response модель ответа с созданной бронью
type Response struct {
	DateAndTime types.DateTime // Начало визита
	WindowEnd   types.DateTime // Конец 90-минутного окна обслуживания
	Room        string         // Имя зала
	Diner       string         // Имя гостя
	PartySize   int            // Количество гостей
}
