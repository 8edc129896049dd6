package create_special_date

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/calendar/models"
)

// CreateSpecialDateBody тело запроса на создание особой даты
type CreateSpecialDateBody struct {
	Date        string  `json:"date"` // "2026-12-31"
	Title       string  `json:"title"`
	IsAvailable bool    `json:"isAvailable"`
	Color       *string `json:"color,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ToServiceRequest конвертирует тело запроса в запрос к сервису
func (b *CreateSpecialDateBody) ToServiceRequest(professionalID, userID int64) *models.CreateSpecialDateRequest {
	return &models.CreateSpecialDateRequest{
		UserID:         userID,
		ProfessionalID: professionalID,
		Date:           b.Date,
		Title:          b.Title,
		IsAvailable:    b.IsAvailable,
		Color:          b.Color,
		Description:    b.Description,
	}
}
