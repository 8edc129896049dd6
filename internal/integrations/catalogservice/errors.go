package catalogservice

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден в CatalogService
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
