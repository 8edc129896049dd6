package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ProfessionalID int64   `json:"professionalId"`
	ServiceID      int64   `json:"serviceId"`
	Title          string  `json:"title"`
	Date           string  `json:"date"`      // "2026-09-07"
	StartTime      string  `json:"startTime"` // "10:00"
	PaymentType    string  `json:"paymentType"`
	Notes          *string `json:"notes,omitempty"`
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Отсутствующие дата и время остаются нулевыми: полноту полей
// перечислит валидация use case.
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID int64) (*createAppointment.Request, error) {
	req := &createAppointment.Request{
		ClientID:       clientID,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		Title:          r.Title,
		PaymentType:    r.PaymentType,
		Notes:          r.Notes,
	}

	// Парсим дату, если указана
	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	req.StartTime = types.TimeString(r.StartTime)

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
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
