package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/calendarconfig"
	catalogClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/catalogservice"
)

// UseCase use case для создания записи на приём
type UseCase struct {
	appointmentRepo AppointmentRepository
	configRepo      CalendarConfigRepository
	specialDateRepo SpecialDateRepository
	catalogClient   CatalogServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	configRepo CalendarConfigRepository,
	specialDateRepo SpecialDateRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		configRepo:      configRepo,
		specialDateRepo: specialDateRepo,
		catalogClient:   catalogClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки за слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, professional=%d, service=%d, date=%s, time=%s",
		req.ClientID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных (все пропущенные поля разом)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем каталог услуг профессионала
	catalog, err := uc.catalogClient.GetCatalog(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrInternal, err)
	}

	// Длительность услуги; неизвестная услуга получает дефолтную длительность
	duration := availability.ServiceDuration(req.ServiceID, catalog)
	service, serviceFound := availability.FindService(req.ServiceID, catalog)
	if !serviceFound {
		uc.logger.Info("CreateAppointment: service id=%d not in catalog, using default duration %d",
			req.ServiceID, duration)
	}

	var result *domain.Appointment
	var warnings []string

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем конфигурацию календаря
		cfg, err := uc.configRepo.GetByProfessionalID(txCtx, req.ProfessionalID)
		if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("CreateAppointment: failed to get calendar config: %v", err)
			return fmt.Errorf("%w: failed to get calendar config: %v", ErrInternal, err)
		}

		if cfg == nil {
			cfg = domain.DefaultCalendarConfig()
			uc.logger.Info("CreateAppointment: using default calendar config for professional=%d", req.ProfessionalID)
		} else {
			uc.logger.Info("CreateAppointment: using calendar config id=%d", cfg.ID)
		}

		// 4.2. Дата не должна быть в прошлом
		if err := validateDateNotInPast(req.Date, now); err != nil {
			uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
			return err
		}

		// 4.3. Проверяем доступность дня (рабочий день + особые даты)
		specialDates, err := uc.specialDateRepo.GetByProfessionalAndDate(txCtx, req.ProfessionalID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get special dates: %v", err)
			return fmt.Errorf("%w: failed to get special dates: %v", ErrInternal, err)
		}

		dateCheck := availability.CheckDate(req.Date, cfg, specialDates)
		if !dateCheck.IsAvailable {
			uc.logger.Warn("CreateAppointment: date %s not available: %s",
				req.Date.Format(domain.DateFormat), dateCheck.Reason)
			if dateCheck.Reason == availability.ReasonSpecialDateBlocked {
				return ErrSpecialDateBlocked
			}
			return ErrNonBusinessDay
		}

		// 4.4. Время начала вне рабочих часов - блокирующая ошибка
		startCheck := availability.CheckTime(req.StartTime, cfg)
		if !startCheck.IsWithin {
			uc.logger.Warn("CreateAppointment: start time %s outside business hours", req.StartTime)
			return ErrStartOutsideHours
		}

		// 4.5. Вычисляем время конца; выход конца за рабочие часы - только предупреждение
		endTime, err := req.StartTime.AddMinutes(duration)
		if err != nil {
			return fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}

		endCheck := availability.CheckTime(endTime, cfg)
		if !endCheck.IsWithin {
			uc.logger.Info("CreateAppointment: end time %s runs past closing time %s, proceeding with warning",
				endTime, cfg.EndTime)
			warnings = append(warnings, WarningEndPastClosing)
		}

		// 4.6. Получаем активные записи на дату с блокировкой (FOR UPDATE)
		filter := domain.ProfessionalAppointmentsFilter{
			ProfessionalID:  req.ProfessionalID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 4.7. Проверяем вместимость слота: занятость считается по совпадению времени начала
		taken := countAtStart(string(req.StartTime), appointments)
		if taken >= cfg.MaxAppointmentsPerSlot {
			uc.logger.Warn("CreateAppointment: slot %s full, %d/%d spots taken",
				req.StartTime, taken, cfg.MaxAppointmentsPerSlot)
			return ErrSlotFull
		}

		uc.logger.Info("CreateAppointment: slot %s available, %d/%d spots taken",
			req.StartTime, taken, cfg.MaxAppointmentsPerSlot)

		// 4.8. Создаем запись с денормализацией данных услуги
		appt := &domain.Appointment{
			ProfessionalID:  req.ProfessionalID,
			ClientID:        req.ClientID,
			ServiceID:       req.ServiceID,
			Title:           req.Title,
			Date:            req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: duration,
			Status:          domain.StatusConfirmed,
			PaymentType:     domain.PaymentType(req.PaymentType),
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return fromDomain(result, warnings), nil
}
