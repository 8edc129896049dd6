package update_appointment_status

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

// UpdateStatusBody тело запроса на смену статуса записи
type UpdateStatusBody struct {
	Status string `json:"status"` // completed, no_show и т.д.
}

// ToServiceRequest конвертирует тело запроса в запрос к сервису
func (b *UpdateStatusBody) ToServiceRequest(userID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID: userID,
		Status: b.Status,
	}
}
