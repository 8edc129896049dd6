package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Все пропущенные обязательные поля перечисляются в одной ошибке,
// а не по одному за запрос.
func validateRequest(req *Request) error {
	missing := make([]string, 0)

	if req.ClientID <= 0 {
		missing = append(missing, "clientId")
	}
	if req.ProfessionalID <= 0 {
		missing = append(missing, "professionalId")
	}
	if req.ServiceID <= 0 {
		missing = append(missing, "serviceId")
	}
	if strings.TrimSpace(req.Title) == "" {
		missing = append(missing, "title")
	}
	if req.Date.IsZero() {
		missing = append(missing, "date")
	}
	if req.StartTime.IsZero() {
		missing = append(missing, "startTime")
	}
	if req.PaymentType == "" {
		missing = append(missing, "paymentType")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrIncompleteSubmission, strings.Join(missing, ", "))
	}

	// Формат и допустимость значений проверяем после полноты
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if !domain.ValidPaymentType(domain.PaymentType(req.PaymentType)) {
		return fmt.Errorf("%w: unknown payment type %q", ErrInvalidInput, req.PaymentType)
	}

	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
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

// countAtStart подсчитывает активные записи, начинающиеся ровно в start
func countAtStart(start string, appointments []*domain.Appointment) int {
	count := 0
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if string(appt.StartTime) == start {
			count++
		}
	}
	return count
}
