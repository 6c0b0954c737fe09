package detail

import "github.com/m04kA/SMC-ReservationService/pkg/txmanager"

// Переиспользуем интерфейс executor из txmanager для работы с БД
type DBExecutor = txmanager.DBExecutor
