package diner

import "errors"

var (
	// ErrDinerNotFound возвращается, когда гость с таким именем не зарегистрирован
	ErrDinerNotFound = errors.New("diner.repository: diner not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("diner.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("diner.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("diner.repository: failed to scan row")
)
