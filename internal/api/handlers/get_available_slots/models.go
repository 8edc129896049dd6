package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string      `json:"date"`
	ProfessionalID  int64       `json:"professionalId"`
	ServiceID       int64       `json:"serviceId"`
	ServiceName     string      `json:"serviceName,omitempty"`
	DurationMinutes int         `json:"durationMinutes"`
	Groups          []SlotGroup `json:"groups"`
}

// SlotGroup группа слотов одного периода дня
type SlotGroup struct {
	Period         string          `json:"period"` // morning / afternoon / evening
	TotalAvailable int             `json:"totalAvailable"`
	Slots          []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	AvailableSpots int    `json:"availableSpots"`
	TotalSpots     int    `json:"totalSpots"`
	Bookable       bool   `json:"bookable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	groups := make([]SlotGroup, len(resp.Groups))
	for i, group := range resp.Groups {
		slots := make([]AvailableSlot, len(group.Slots))
		for j, slot := range group.Slots {
			slots[j] = AvailableSlot{
				StartTime:      slot.StartTime.String(),
				EndTime:        slot.EndTime.String(),
				AvailableSpots: slot.Available,
				TotalSpots:     slot.Capacity,
				Bookable:       slot.Bookable,
			}
		}
		groups[i] = SlotGroup{
			Period:         string(group.Period),
			TotalAvailable: group.TotalAvailable,
			Slots:          slots,
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ProfessionalID:  resp.ProfessionalID,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		DurationMinutes: resp.DurationMinutes,
		Groups:          groups,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(professionalID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           date,
	}, nil
}
