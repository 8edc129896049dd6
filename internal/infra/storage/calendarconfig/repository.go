package calendarconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Repository репозиторий для работы с конфигурацией календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProfessionalID получает конфигурацию календаря профессионала
func (r *Repository) GetByProfessionalID(ctx context.Context, professionalID int64) (*domain.CalendarConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"professional_id",
		"business_days",
		"start_time",
		"end_time",
		"slot_min_time",
		"slot_max_time",
		"max_appointments_per_slot",
		"created_at",
		"updated_at",
	).
		From("calendar_config").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalID - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.CalendarConfig
	var businessDays pq.Int64Array
	var slotMin, slotMax types.TimeString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.ProfessionalID,
		&businessDays,
		&cfg.StartTime,
		&cfg.EndTime,
		&slotMin,
		&slotMax,
		&cfg.MaxAppointmentsPerSlot,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalID - scan config: %v", ErrScanRow, err)
	}

	cfg.BusinessDays = []int64(businessDays)
	if !slotMin.IsZero() {
		cfg.SlotMinTime = &slotMin
	}
	if !slotMax.IsZero() {
		cfg.SlotMaxTime = &slotMax
	}
	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// Upsert создает или полностью заменяет конфигурацию календаря профессионала.
// Конфигурация редактируется целиком, поэтому частичных обновлений нет.
func (r *Repository) Upsert(ctx context.Context, cfg *domain.CalendarConfig) (*domain.CalendarConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_config").
		Columns(
			"professional_id",
			"business_days",
			"start_time",
			"end_time",
			"slot_min_time",
			"slot_max_time",
			"max_appointments_per_slot",
		).
		Values(
			cfg.ProfessionalID,
			pq.Int64Array(cfg.BusinessDays),
			cfg.StartTime,
			cfg.EndTime,
			cfg.SlotMinTime,
			cfg.SlotMaxTime,
			cfg.MaxAppointmentsPerSlot,
		).
		Suffix(`ON CONFLICT (professional_id) DO UPDATE SET
			business_days = EXCLUDED.business_days,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			slot_min_time = EXCLUDED.slot_min_time,
			slot_max_time = EXCLUDED.slot_max_time,
			max_appointments_per_slot = EXCLUDED.max_appointments_per_slot,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}
