package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/calendarconfig"
	catalogClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/catalogservice"
)

// UseCase use case для получения доступных слотов на день
type UseCase struct {
	configRepo      CalendarConfigRepository
	specialDateRepo SpecialDateRepository
	appointmentRepo AppointmentRepository
	catalogClient   CatalogServiceClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configRepo CalendarConfigRepository,
	specialDateRepo SpecialDateRepository,
	appointmentRepo AppointmentRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		configRepo:      configRepo,
		specialDateRepo: specialDateRepo,
		appointmentRepo: appointmentRepo,
		catalogClient:   catalogClient,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%d, service=%d, date=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем конфигурацию календаря
	cfg, err := uc.configRepo.GetByProfessionalID(ctx, req.ProfessionalID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get calendar config: %v", err)
		return nil, fmt.Errorf("%w: failed to get calendar config: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтную политику
	if cfg == nil {
		cfg = domain.DefaultCalendarConfig()
		uc.logger.Info("GetAvailableSlots: using default calendar config for professional=%d", req.ProfessionalID)
	} else {
		uc.logger.Info("GetAvailableSlots: using calendar config id=%d", cfg.ID)
	}

	// 3. Получаем переопределения на запрошенный день
	specialDates, err := uc.specialDateRepo.GetByProfessionalAndDate(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get special dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get special dates: %v", ErrInternal, err)
	}

	// 4. Проверяем доступность дня
	dateCheck := availability.CheckDate(req.Date, cfg, specialDates)
	if !dateCheck.IsAvailable {
		uc.logger.Info("GetAvailableSlots: date %s is not available: %s",
			req.Date.Format(domain.DateFormat), dateCheck.Reason)
		return nil, dateCheckError(dateCheck)
	}

	// 5. Получаем каталог услуг (шаг слотов = длительность выбранной услуги)
	catalog, err := uc.catalogClient.GetCatalog(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found in catalog", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrInternal, err)
	}

	duration := availability.ServiceDuration(req.ServiceID, catalog)
	service, found := availability.FindService(req.ServiceID, catalog)
	if !found {
		// Неизвестная услуга не ошибка: действует дефолтная длительность
		uc.logger.Info("GetAvailableSlots: service id=%d not in catalog, using default duration %d",
			req.ServiceID, duration)
	}

	// 6. Получаем активные записи на эту дату
	filter := domain.ProfessionalAppointmentsFilter{
		ProfessionalID:  req.ProfessionalID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только активные записи занимают слоты
	}

	appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Генерируем слоты и группируем по периодам дня
	slots, err := availability.GenerateSlots(cfg, duration, appointments)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	groups := availability.PartitionSlots(slots)

	uc.logger.Info("GetAvailableSlots: generated %d slots in %d groups for professional=%d, service=%d, date=%s",
		len(slots), len(groups), req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		ServiceName:     service.Name,
		DurationMinutes: duration,
		Groups:          fromDomainGroups(groups),
	}, nil
}

// dateCheckError конвертирует результат проверки даты в sentinel ошибку
func dateCheckError(check availability.DateCheck) error {
	if check.Reason == availability.ReasonSpecialDateBlocked {
		return ErrSpecialDateBlocked
	}
	return ErrNonBusinessDay
}
