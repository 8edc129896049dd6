package create_appointment

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrIncompleteSubmission возвращается, когда не заполнены обязательные поля.
	// Текст ошибки перечисляет все пропущенные поля разом.
	ErrIncompleteSubmission = errors.New("required fields are missing")

	// ErrNonBusinessDay возвращается, когда день недели не входит в рабочие дни
	ErrNonBusinessDay = errors.New("date is not a business day")

	// ErrSpecialDateBlocked возвращается, когда дата заблокирована особой датой
	ErrSpecialDateBlocked = errors.New("date is blocked by a special date")

	// ErrInvalidDate возвращается при некорректной дате записи (например, в прошлом)
	ErrInvalidDate = errors.New("invalid appointment date")

	// ErrStartOutsideHours возвращается, когда время начала вне рабочих часов.
	// В отличие от выхода конца записи за рабочие часы, это блокирующая ошибка.
	ErrStartOutsideHours = errors.New("start time is outside business hours")

	// ErrSlotFull возвращается, когда на выбранное время начала нет свободных мест
	ErrSlotFull = errors.New("slot has no remaining capacity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
