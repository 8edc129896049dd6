package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// CalendarConfigRepository интерфейс репозитория конфигурации календаря
type CalendarConfigRepository interface {
	GetByProfessionalID(ctx context.Context, professionalID int64) (*domain.CalendarConfig, error)
}

// SpecialDateRepository интерфейс репозитория особых дат
type SpecialDateRepository interface {
	// GetByProfessionalAndDate получает переопределения на конкретный день
	GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.SpecialDate, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetCatalog(ctx context.Context, professionalID int64) ([]domain.Category, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
