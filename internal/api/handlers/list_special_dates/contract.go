package list_special_dates

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/calendar/models"
)

// CalendarService интерфейс сервиса календаря
type CalendarService interface {
	ListSpecialDates(ctx context.Context, req *models.ListSpecialDatesRequest) (*models.SpecialDateListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
