package create_special_date

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/calendar/models"
)

// CalendarService интерфейс сервиса календаря
type CalendarService interface {
	CreateSpecialDate(ctx context.Context, req *models.CreateSpecialDateRequest) (*models.SpecialDateResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
