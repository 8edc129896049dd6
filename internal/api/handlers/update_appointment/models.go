package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	updateAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// UpdateAppointmentRequest HTTP request model.
// Все поля опциональны: отсутствующее поле остаётся без изменений.
type UpdateAppointmentRequest struct {
	ServiceID   *int64  `json:"serviceId,omitempty"`
	Title       *string `json:"title,omitempty"`
	Date        *string `json:"date,omitempty"`      // "2026-09-07"
	StartTime   *string `json:"startTime,omitempty"` // "10:00"
	PaymentType *string `json:"paymentType,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64    `json:"id"`
	ClientID        int64    `json:"clientId"`
	ProfessionalID  int64    `json:"professionalId"`
	ServiceID       int64    `json:"serviceId"`
	Title           string   `json:"title"`
	Date            string   `json:"date"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	DurationMinutes int      `json:"durationMinutes"`
	Status          string   `json:"status"`
	PaymentType     string   `json:"paymentType"`
	ServiceName     string   `json:"serviceName,omitempty"`
	ServicePrice    float64  `json:"servicePrice"`
	Notes           *string  `json:"notes,omitempty"`
	DisplayColor    string   `json:"displayColor"`
	Warnings        []string `json:"warnings,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(appointmentID, userID int64) (*updateAppointment.Request, error) {
	req := &updateAppointment.Request{
		AppointmentID: appointmentID,
		UserID:        userID,
		ServiceID:     r.ServiceID,
		Title:         r.Title,
		PaymentType:   r.PaymentType,
		Notes:         r.Notes,
	}

	// Парсим дату, если указана
	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		startTime := types.TimeString(*r.StartTime)
		req.StartTime = &startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		ProfessionalID:  resp.ProfessionalID,
		ServiceID:       resp.ServiceID,
		Title:           resp.Title,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		PaymentType:     resp.PaymentType,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Notes:           resp.Notes,
		DisplayColor:    resp.DisplayColor,
		Warnings:        resp.Warnings,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
