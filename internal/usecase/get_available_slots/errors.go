package get_available_slots

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrNonBusinessDay возвращается, когда день недели не входит в рабочие дни
	ErrNonBusinessDay = errors.New("date is not a business day")

	// ErrSpecialDateBlocked возвращается, когда дата заблокирована особой датой
	ErrSpecialDateBlocked = errors.New("date is blocked by a special date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
