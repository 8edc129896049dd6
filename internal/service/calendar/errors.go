package calendar

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация календаря не найдена
	ErrConfigNotFound = errors.New("calendar config not found")

	// ErrSpecialDateNotFound возвращается, когда особая дата не найдена
	ErrSpecialDateNotFound = errors.New("special date not found")

	// ErrSpecialDateAlreadyExists возвращается при попытке создать
	// вторую особую дату на тот же день
	ErrSpecialDateAlreadyExists = errors.New("special date already exists for this date")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
