package list_special_dates

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/calendar/models"
)

// ToServiceRequest формирует запрос к сервису из path и query параметров.
// Параметры from и to опциональны и задают период в формате YYYY-MM-DD.
func ToServiceRequest(professionalID int64, fromStr, toStr string) (*models.ListSpecialDatesRequest, error) {
	req := &models.ListSpecialDatesRequest{
		ProfessionalID: professionalID,
	}

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from date: %v", err)
		}
		req.From = &from
	}

	if toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid to date: %v", err)
		}
		req.To = &to
	}

	return req, nil
}
