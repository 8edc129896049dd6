package calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// CalendarConfigRepository интерфейс репозитория конфигурации календаря
type CalendarConfigRepository interface {
	GetByProfessionalID(ctx context.Context, professionalID int64) (*domain.CalendarConfig, error)
	Upsert(ctx context.Context, cfg *domain.CalendarConfig) (*domain.CalendarConfig, error)
}

// SpecialDateRepository интерфейс репозитория особых дат
type SpecialDateRepository interface {
	Create(ctx context.Context, sd *domain.SpecialDate) (*domain.SpecialDate, error)
	ListByProfessional(ctx context.Context, professionalID int64, from, to *time.Time) ([]*domain.SpecialDate, error)
	Delete(ctx context.Context, professionalID, specialDateID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
