package update_calendar_config

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/calendar/models"
)

// UpdateConfigBody тело запроса на замену конфигурации календаря.
// Конфигурация заменяется целиком: пропущенные поля считаются незаданными.
type UpdateConfigBody struct {
	BusinessDays           []int64 `json:"businessDays"`
	StartTime              string  `json:"startTime"`
	EndTime                string  `json:"endTime"`
	SlotMinTime            *string `json:"slotMinTime,omitempty"`
	SlotMaxTime            *string `json:"slotMaxTime,omitempty"`
	MaxAppointmentsPerSlot int     `json:"maxAppointmentsPerSlot"`
}

// ToServiceRequest конвертирует тело запроса в запрос к сервису
func (b *UpdateConfigBody) ToServiceRequest(professionalID, userID int64) *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		UserID:                 userID,
		ProfessionalID:         professionalID,
		BusinessDays:           b.BusinessDays,
		StartTime:              b.StartTime,
		EndTime:                b.EndTime,
		SlotMinTime:            b.SlotMinTime,
		SlotMaxTime:            b.SlotMaxTime,
		MaxAppointmentsPerSlot: b.MaxAppointmentsPerSlot,
	}
}
