package update_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	if !req.hasChanges() {
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: invalid serviceId", ErrInvalidInput)
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		if len(*req.Title) > domain.MaxTitleLength {
			return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
		}
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.PaymentType != nil && !domain.ValidPaymentType(domain.PaymentType(*req.PaymentType)) {
		return fmt.Errorf("%w: unknown payment type %q", ErrInvalidInput, *req.PaymentType)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDateNotInPast проверяет, что дата записи не в прошлом
func validateDateNotInPast(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// countAtStartExcluding подсчитывает активные записи, начинающиеся ровно в start,
// не считая обновляемую запись
func countAtStartExcluding(start string, excludeID int64, appointments []*domain.Appointment) int {
	count := 0
	for _, appt := range appointments {
		if appt.ID == excludeID {
			continue
		}
		if !appt.IsActive() {
			continue
		}
		if string(appt.StartTime) == start {
			count++
		}
	}
	return count
}
