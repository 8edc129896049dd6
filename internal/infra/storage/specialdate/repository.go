package specialdate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

// specialDateColumns список колонок таблицы special_dates в порядке сканирования
var specialDateColumns = []string{
	"id",
	"professional_id",
	"special_date",
	"title",
	"is_available",
	"color",
	"description",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с особыми датами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория особых дат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую особую дату
// На один день допускается только одна особая дата
func (r *Repository) Create(ctx context.Context, sd *domain.SpecialDate) (*domain.SpecialDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("special_dates").
		Columns(
			"professional_id",
			"special_date",
			"title",
			"is_available",
			"color",
			"description",
		).
		Values(
			sd.ProfessionalID,
			sd.Date,
			sd.Title,
			sd.IsAvailable,
			sd.Color,
			sd.Description,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sd.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateDate
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sd.CreatedAt = createdAt.Time
	sd.UpdatedAt = updatedAt.Time

	return sd, nil
}

// ListByProfessional получает все особые даты профессионала
// Опционально ограничивает период [from, to]
func (r *Repository) ListByProfessional(ctx context.Context, professionalID int64, from, to *time.Time) ([]*domain.SpecialDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(specialDateColumns...).
		From("special_dates").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("special_date ASC")

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"special_date": *from})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"special_date": *to})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSpecialDates(rows)
}

// GetByProfessionalAndDate получает особые даты профессионала на конкретный день
// Возвращает пустой список, если на день нет переопределений
func (r *Repository) GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.SpecialDate, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return r.ListByProfessional(ctx, professionalID, &day, &day)
}

// Delete удаляет особую дату профессионала
func (r *Repository) Delete(ctx context.Context, professionalID, specialDateID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("special_dates").
		Where(squirrel.Eq{"id": specialDateID, "professional_id": professionalID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpecialDateNotFound
	}

	return nil
}

// scanSpecialDates сканирует список особых дат из результата запроса
func (r *Repository) scanSpecialDates(rows *sql.Rows) ([]*domain.SpecialDate, error) {
	specialDates := make([]*domain.SpecialDate, 0)

	for rows.Next() {
		var sd domain.SpecialDate
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&sd.ID,
			&sd.ProfessionalID,
			&sd.Date,
			&sd.Title,
			&sd.IsAvailable,
			&sd.Color,
			&sd.Description,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSpecialDates - scan row: %v", ErrScanRow, err)
		}

		sd.CreatedAt = createdAt.Time
		sd.UpdatedAt = updatedAt.Time
		specialDates = append(specialDates, &sd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSpecialDates - rows error: %v", ErrScanRow, err)
	}

	return specialDates, nil
}
