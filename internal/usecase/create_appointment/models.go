package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Предупреждения, возвращаемые вместе с успешным результатом
const (
	// WarningEndPastClosing запись корректна, но закончится после закрытия.
	// Это допустимо и не блокирует создание.
	WarningEndPastClosing = "appointment end time runs past closing time"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID       int64            // ID клиента
	ProfessionalID int64            // ID профессионала
	ServiceID      int64            // ID услуги
	Title          string           // Название записи
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала ("10:00")
	PaymentType    string           // Способ оплаты: cash / card / transfer
	Notes          *string          // Заметки (опционально)
}

// Response модель ответа с созданной записью
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
