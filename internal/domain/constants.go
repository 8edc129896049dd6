package domain

// Default scheduling policy values, used when a professional has no stored
// calendar configuration (see DefaultCalendarConfig).
const (
	DefaultStartTime              = "08:00"
	DefaultEndTime                = "18:00"
	DefaultMaxAppointmentsPerSlot = 1

	// DefaultServiceDurationMinutes is the fallback duration applied when a
	// service id cannot be resolved in the catalog. Not an error case.
	DefaultServiceDurationMinutes = 60
)

// Business validation constants
const (
	MinAppointmentsPerSlot      = 1
	MaxAppointmentsPerSlotLimit = 100
	MinSlotStepMinutes          = 5
	MaxSlotStepMinutes          = 480 // 8 hours
	MaxTitleLength              = 200
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxSpecialDateTitleLength   = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных записей
// Используется для фильтрации при подсчёте занятости слотов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByClient,
	StatusCancelledByProfessional,
	StatusNoShow,
}

// ActiveStatuses список статусов активных записей
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
