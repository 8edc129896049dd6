package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending                 AppointmentStatus = "pending"
	StatusConfirmed               AppointmentStatus = "confirmed"
	StatusCompleted               AppointmentStatus = "completed"
	StatusCancelledByClient       AppointmentStatus = "cancelled_by_client"
	StatusCancelledByProfessional AppointmentStatus = "cancelled_by_professional"
	StatusNoShow                  AppointmentStatus = "no_show"
)

// PaymentType represents how the client pays for the appointment
type PaymentType string

const (
	PaymentCash     PaymentType = "cash"
	PaymentCard     PaymentType = "card"
	PaymentTransfer PaymentType = "transfer"
)

// ValidPaymentType reports whether p is one of the supported payment types.
func ValidPaymentType(p PaymentType) bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// Appointment represents a scheduled appointment in the system
type Appointment struct {
	ID             int64
	ProfessionalID int64
	ClientID       int64
	ServiceID      int64

	Title           string
	Date            time.Time // day granularity
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Status          AppointmentStatus
	PaymentType     PaymentType

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies slot capacity
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelledByClient &&
		a.Status != StatusCancelledByProfessional &&
		a.Status != StatusNoShow
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeUpdated returns true if the appointment can be rescheduled or edited
func (a *Appointment) CanBeUpdated() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelledByClient || a.Status == StatusCancelledByProfessional
}

// ProfessionalAppointmentsFilter фильтр для получения записей профессионала
type ProfessionalAppointmentsFilter struct {
	ProfessionalID  int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые и no-show записи
}
