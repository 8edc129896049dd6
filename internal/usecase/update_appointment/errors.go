package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied возвращается, когда пользователь не является
	// ни клиентом, ни профессионалом этой записи
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotUpdate возвращается, когда запись в терминальном статусе
	ErrCannotUpdate = errors.New("appointment cannot be updated in its current status")

	// ErrNonBusinessDay возвращается, когда новая дата не входит в рабочие дни
	ErrNonBusinessDay = errors.New("date is not a business day")

	// ErrSpecialDateBlocked возвращается, когда новая дата заблокирована особой датой
	ErrSpecialDateBlocked = errors.New("date is blocked by a special date")

	// ErrInvalidDate возвращается при некорректной дате записи (например, в прошлом)
	ErrInvalidDate = errors.New("invalid appointment date")

	// ErrStartOutsideHours возвращается, когда новое время начала вне рабочих часов
	ErrStartOutsideHours = errors.New("start time is outside business hours")

	// ErrSlotFull возвращается, когда на новое время начала нет свободных мест
	ErrSlotFull = errors.New("slot has no remaining capacity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
