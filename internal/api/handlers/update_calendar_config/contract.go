package update_calendar_config

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/calendar/models"
)

// CalendarService интерфейс сервиса календаря
type CalendarService interface {
	UpsertConfig(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
