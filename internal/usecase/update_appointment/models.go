package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Предупреждения, возвращаемые вместе с успешным результатом
const (
	// WarningEndPastClosing запись корректна, но закончится после закрытия
	WarningEndPastClosing = "appointment end time runs past closing time"
)

// Request модель запроса на обновление записи.
// Все изменяемые поля опциональны: nil означает "оставить как есть".
type Request struct {
	AppointmentID int64 // ID записи
	UserID        int64 // ID пользователя, выполняющего обновление

	ServiceID   *int64            // Новая услуга: пересчитывает длительность и конец
	Title       *string           // Новое название
	Date        *time.Time        // Новая дата: время начала сохраняется как есть
	StartTime   *types.TimeString // Новое время начала: пересчитывает конец
	PaymentType *string           // Новый способ оплаты
	Notes       *string           // Новые заметки
}

// hasChanges проверяет, что в запросе есть хотя бы одно изменение
func (r *Request) hasChanges() bool {
	return r.ServiceID != nil || r.Title != nil || r.Date != nil ||
		r.StartTime != nil || r.PaymentType != nil || r.Notes != nil
}

// Response модель ответа с обновлённой записью
type Response struct {
	ID             int64
	ClientID       int64
	ProfessionalID int64
	ServiceID      int64

	Title           string
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Status          string
	PaymentType     string

	ServiceName  string
	ServicePrice float64
	Notes        *string

	// DisplayColor детерминированный цвет для отображения записи
	DisplayColor string

	// Warnings некритичные замечания (например, выход конца записи за рабочие часы)
	Warnings []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomain конвертирует доменную запись в ответ usecase
func fromDomain(appt *domain.Appointment, warnings []string) *Response {
	return &Response{
		ID:              appt.ID,
		ClientID:        appt.ClientID,
		ProfessionalID:  appt.ProfessionalID,
		ServiceID:       appt.ServiceID,
		Title:           appt.Title,
		Date:            appt.Date,
		StartTime:       appt.StartTime,
		EndTime:         appt.EndTime,
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		PaymentType:     string(appt.PaymentType),
		ServiceName:     appt.ServiceName,
		ServicePrice:    appt.ServicePrice,
		Notes:           appt.Notes,
		DisplayColor:    domain.DisplayColor(appt.ID),
		Warnings:        warnings,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}
