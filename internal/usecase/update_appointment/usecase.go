package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/calendarconfig"
	catalogClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/catalogservice"
)

// UseCase use case для обновления записи на приём
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

// Execute выполняет use case обновления записи.
// Доступно клиенту записи и профессионалу. Перенос на другую дату сохраняет
// время начала "на стене"; смена услуги или времени начала пересчитывает конец.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: appointment=%d, user=%d", req.AppointmentID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем запись для проверки прав доступа
	existing, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateAppointment: repository error for appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	// Обновлять запись могут только её клиент и профессионал
	if existing.ClientID != req.UserID && existing.ProfessionalID != req.UserID {
		uc.logger.Warn("UpdateAppointment: access denied for user=%d to appointment id=%d",
			req.UserID, req.AppointmentID)
		return nil, ErrAccessDenied
	}

	if !existing.CanBeUpdated() {
		uc.logger.Warn("UpdateAppointment: appointment id=%d cannot be updated, status=%s",
			req.AppointmentID, existing.Status)
		return nil, ErrCannotUpdate
	}

	// 4. При смене услуги нужен каталог для пересчёта длительности
	var catalog []domain.Category
	if req.ServiceID != nil && *req.ServiceID != existing.ServiceID {
		catalog, err = uc.catalogClient.GetCatalog(ctx, existing.ProfessionalID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrProfessionalNotFound) {
				uc.logger.Warn("UpdateAppointment: professional id=%d not found", existing.ProfessionalID)
				return nil, ErrInternal
			}
			uc.logger.Error("UpdateAppointment: failed to get catalog: %v", err)
			return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrInternal, err)
		}
	}

	var result *domain.Appointment
	var warnings []string

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Перечитываем запись внутри транзакции
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		if !appt.CanBeUpdated() {
			return ErrCannotUpdate
		}

		// 5.2. Применяем изменения поверх текущего состояния
		updated := *appt

		if req.Title != nil {
			updated.Title = *req.Title
		}
		if req.PaymentType != nil {
			updated.PaymentType = domain.PaymentType(*req.PaymentType)
		}
		if req.Notes != nil {
			updated.Notes = req.Notes
		}
		if req.Date != nil {
			// StartTime хранится как "HH:MM", перенос даты сохраняет его автоматически
			updated.Date = *req.Date
		}
		if req.StartTime != nil {
			updated.StartTime = *req.StartTime
		}
		if req.ServiceID != nil && *req.ServiceID != appt.ServiceID {
			updated.ServiceID = *req.ServiceID
			updated.DurationMinutes = availability.ServiceDuration(*req.ServiceID, catalog)
			service, found := availability.FindService(*req.ServiceID, catalog)
			if found {
				updated.ServiceName = service.Name
				updated.ServicePrice = service.Price
			} else {
				uc.logger.Info("UpdateAppointment: service id=%d not in catalog, using default duration %d",
					*req.ServiceID, updated.DurationMinutes)
			}
		}

		// Конец всегда пересчитывается от актуальных начала и длительности
		endTime, err := updated.StartTime.AddMinutes(updated.DurationMinutes)
		if err != nil {
			return fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}
		updated.EndTime = endTime

		// 5.3. Перепроверяем доступность, если изменились дата или время
		rescheduled := req.Date != nil || req.StartTime != nil || req.ServiceID != nil
		if rescheduled {
			cfg, err := uc.configRepo.GetByProfessionalID(txCtx, appt.ProfessionalID)
			if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
				return fmt.Errorf("%w: failed to get calendar config: %v", ErrInternal, err)
			}
			if cfg == nil {
				cfg = domain.DefaultCalendarConfig()
			}

			if err := validateDateNotInPast(updated.Date, now); err != nil {
				return err
			}

			specialDates, err := uc.specialDateRepo.GetByProfessionalAndDate(txCtx, appt.ProfessionalID, updated.Date)
			if err != nil {
				return fmt.Errorf("%w: failed to get special dates: %v", ErrInternal, err)
			}

			dateCheck := availability.CheckDate(updated.Date, cfg, specialDates)
			if !dateCheck.IsAvailable {
				uc.logger.Warn("UpdateAppointment: date %s not available: %s",
					updated.Date.Format(domain.DateFormat), dateCheck.Reason)
				if dateCheck.Reason == availability.ReasonSpecialDateBlocked {
					return ErrSpecialDateBlocked
				}
				return ErrNonBusinessDay
			}

			startCheck := availability.CheckTime(updated.StartTime, cfg)
			if !startCheck.IsWithin {
				uc.logger.Warn("UpdateAppointment: start time %s outside business hours", updated.StartTime)
				return ErrStartOutsideHours
			}

			endCheck := availability.CheckTime(updated.EndTime, cfg)
			if !endCheck.IsWithin {
				uc.logger.Info("UpdateAppointment: end time %s runs past closing time %s, proceeding with warning",
					updated.EndTime, cfg.EndTime)
				warnings = append(warnings, WarningEndPastClosing)
			}

			// 5.4. Проверяем вместимость нового слота с блокировкой (FOR UPDATE),
			// не считая саму обновляемую запись
			filter := domain.ProfessionalAppointmentsFilter{
				ProfessionalID:  appt.ProfessionalID,
				StartDate:       &updated.Date,
				EndDate:         &updated.Date,
				IncludeInactive: false,
			}

			appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(txCtx, filter)
			if err != nil {
				return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
			}

			taken := countAtStartExcluding(string(updated.StartTime), appt.ID, appointments)
			if taken >= cfg.MaxAppointmentsPerSlot {
				uc.logger.Warn("UpdateAppointment: slot %s full, %d/%d spots taken",
					updated.StartTime, taken, cfg.MaxAppointmentsPerSlot)
				return ErrSlotFull
			}
		}

		// 5.5. Сохраняем изменения
		saved, err := uc.appointmentRepo.Update(txCtx, &updated)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = saved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)

	return fromDomain(result, warnings), nil
}
