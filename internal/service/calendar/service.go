package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/calendarconfig"
	specialDateRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/specialdate"
	"github.com/m04kA/SMC-SchedulingService/internal/service/calendar/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Service сервис для работы с календарём профессионала:
// конфигурация рабочих часов и особые даты
type Service struct {
	configRepo      CalendarConfigRepository
	specialDateRepo SpecialDateRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	configRepo CalendarConfigRepository,
	specialDateRepo SpecialDateRepository,
	logger Logger,
) *Service {
	return &Service{
		configRepo:      configRepo,
		specialDateRepo: specialDateRepo,
		logger:          logger,
	}
}

// GetConfig получает конфигурацию календаря профессионала
// Если конфигурация не сохранена, возвращается дефолтная политика (IsDefault=true)
func (s *Service) GetConfig(ctx context.Context, professionalID int64) (*models.ConfigResponse, error) {
	s.logger.Info("GetConfig: fetching config for professional=%d", professionalID)

	cfg, err := s.configRepo.GetByProfessionalID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("GetConfig: no config for professional=%d, returning default policy", professionalID)
			defaultCfg := domain.DefaultCalendarConfig()
			defaultCfg.ProfessionalID = professionalID
			return models.FromDomainConfig(defaultCfg, true), nil
		}
		s.logger.Error("GetConfig: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetConfig: successfully fetched config id=%d", cfg.ID)
	return models.FromDomainConfig(cfg, false), nil
}

// UpsertConfig создает или целиком заменяет конфигурацию календаря
// Доступно только самому профессионалу
func (s *Service) UpsertConfig(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpsertConfig: upserting config for professional=%d by user=%d", req.ProfessionalID, req.UserID)

	// Конфигурацию меняет только сам профессионал
	if req.UserID != req.ProfessionalID {
		s.logger.Warn("UpsertConfig: access denied for user=%d to professional=%d config", req.UserID, req.ProfessionalID)
		return nil, ErrAccessDenied
	}

	// Валидируем конфигурацию
	if err := s.validateConfigData(req); err != nil {
		s.logger.Warn("UpsertConfig: validation failed for professional=%d: %v", req.ProfessionalID, err)
		return nil, err
	}

	cfg, err := s.configRepo.Upsert(ctx, req.ToDomainConfig())
	if err != nil {
		s.logger.Error("UpsertConfig: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: UpsertConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertConfig: successfully upserted config id=%d for professional=%d", cfg.ID, req.ProfessionalID)
	return models.FromDomainConfig(cfg, false), nil
}

// ListSpecialDates получает особые даты профессионала, опционально за период
// Публичный метод - используется и клиентами при выборе даты
func (s *Service) ListSpecialDates(ctx context.Context, req *models.ListSpecialDatesRequest) (*models.SpecialDateListResponse, error) {
	s.logger.Info("ListSpecialDates: fetching special dates for professional=%d", req.ProfessionalID)

	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		s.logger.Warn("ListSpecialDates: invalid period for professional=%d", req.ProfessionalID)
		return nil, fmt.Errorf("%w: period end is before period start", ErrInvalidInput)
	}

	dates, err := s.specialDateRepo.ListByProfessional(ctx, req.ProfessionalID, req.From, req.To)
	if err != nil {
		s.logger.Error("ListSpecialDates: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: ListSpecialDates - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSpecialDates: successfully fetched %d special dates for professional=%d", len(dates), req.ProfessionalID)
	return models.FromDomainSpecialDateList(dates), nil
}

// CreateSpecialDate создает особую дату (праздник, исключительное закрытие)
// Доступно только самому профессионалу
// На один календарный день допускается не более одной особой даты
func (s *Service) CreateSpecialDate(ctx context.Context, req *models.CreateSpecialDateRequest) (*models.SpecialDateResponse, error) {
	s.logger.Info("CreateSpecialDate: creating special date %s for professional=%d by user=%d",
		req.Date, req.ProfessionalID, req.UserID)

	if req.UserID != req.ProfessionalID {
		s.logger.Warn("CreateSpecialDate: access denied for user=%d to professional=%d calendar", req.UserID, req.ProfessionalID)
		return nil, ErrAccessDenied
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("CreateSpecialDate: invalid date %q for professional=%d", req.Date, req.ProfessionalID)
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(req.Title) > domain.MaxSpecialDateTitleLength {
		return nil, fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxSpecialDateTitleLength)
	}

	sd := &domain.SpecialDate{
		ProfessionalID: req.ProfessionalID,
		Date:           date,
		Title:          req.Title,
		IsAvailable:    req.IsAvailable,
		Color:          req.Color,
		Description:    req.Description,
	}

	created, err := s.specialDateRepo.Create(ctx, sd)
	if err != nil {
		if errors.Is(err, specialDateRepo.ErrDuplicateDate) {
			s.logger.Warn("CreateSpecialDate: special date already exists on %s for professional=%d",
				req.Date, req.ProfessionalID)
			return nil, ErrSpecialDateAlreadyExists
		}
		s.logger.Error("CreateSpecialDate: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: CreateSpecialDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSpecialDate: successfully created special date id=%d", created.ID)
	return models.FromDomainSpecialDate(created), nil
}

// DeleteSpecialDate удаляет особую дату
// Доступно только самому профессионалу
func (s *Service) DeleteSpecialDate(ctx context.Context, req *models.DeleteSpecialDateRequest) error {
	s.logger.Info("DeleteSpecialDate: deleting special date id=%d for professional=%d by user=%d",
		req.SpecialDateID, req.ProfessionalID, req.UserID)

	if req.UserID != req.ProfessionalID {
		s.logger.Warn("DeleteSpecialDate: access denied for user=%d to professional=%d calendar", req.UserID, req.ProfessionalID)
		return ErrAccessDenied
	}

	if err := s.specialDateRepo.Delete(ctx, req.ProfessionalID, req.SpecialDateID); err != nil {
		if errors.Is(err, specialDateRepo.ErrSpecialDateNotFound) {
			s.logger.Warn("DeleteSpecialDate: special date id=%d not found for professional=%d",
				req.SpecialDateID, req.ProfessionalID)
			return ErrSpecialDateNotFound
		}
		s.logger.Error("DeleteSpecialDate: repository error for special date id=%d: %v", req.SpecialDateID, err)
		return fmt.Errorf("%w: DeleteSpecialDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSpecialDate: successfully deleted special date id=%d", req.SpecialDateID)
	return nil
}

// Вспомогательные методы

// validateConfigData валидирует параметры конфигурации календаря
func (s *Service) validateConfigData(req *models.UpsertConfigRequest) error {
	// Проверяем businessDays
	if len(req.BusinessDays) == 0 {
		return fmt.Errorf("%w: businessDays must not be empty", ErrInvalidInput)
	}
	seen := map[int64]bool{}
	for _, day := range req.BusinessDays {
		if day < 0 || day > 6 {
			return fmt.Errorf("%w: businessDays values must be between 0 (Sunday) and 6 (Saturday)", ErrInvalidInput)
		}
		if seen[day] {
			return fmt.Errorf("%w: businessDays must not contain duplicates", ErrInvalidInput)
		}
		seen[day] = true
	}

	// Проверяем рабочие часы
	start := types.TimeString(req.StartTime)
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	end := types.TimeString(req.EndTime)
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	// Проверяем окно отрисовки слотов
	if req.SlotMinTime != nil {
		slotMin := types.TimeString(*req.SlotMinTime)
		if err := slotMin.Validate(); err != nil {
			return fmt.Errorf("%w: invalid slotMinTime: %v", ErrInvalidInput, err)
		}
		if slotMin.IsAfter(start) {
			return fmt.Errorf("%w: slotMinTime must not be after startTime", ErrInvalidInput)
		}
	}
	if req.SlotMaxTime != nil {
		slotMax := types.TimeString(*req.SlotMaxTime)
		if err := slotMax.Validate(); err != nil {
			return fmt.Errorf("%w: invalid slotMaxTime: %v", ErrInvalidInput, err)
		}
		if slotMax.IsBefore(end) {
			return fmt.Errorf("%w: slotMaxTime must not be before endTime", ErrInvalidInput)
		}
	}

	// Проверяем вместимость слота
	if req.MaxAppointmentsPerSlot < domain.MinAppointmentsPerSlot ||
		req.MaxAppointmentsPerSlot > domain.MaxAppointmentsPerSlotLimit {
		return fmt.Errorf("%w: maxAppointmentsPerSlot must be between %d and %d",
			ErrInvalidInput, domain.MinAppointmentsPerSlot, domain.MaxAppointmentsPerSlotLimit)
	}

	return nil
}
