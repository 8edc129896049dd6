package calendarconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация календаря не найдена
	ErrConfigNotFound = errors.New("calendarconfig.repository: config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendarconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendarconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendarconfig.repository: failed to scan row")
)
