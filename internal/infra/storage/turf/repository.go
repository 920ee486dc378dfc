package turf

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
	"github.com/TheMidnightCodeGuild/turfujn/pkg/dbmetrics"
	"github.com/TheMidnightCodeGuild/turfujn/pkg/psqlbuilder"
)

// Repository репозиторий для чтения площадок
// Используется usecase-ами для проверки существования площадки
// и денормализации её названия в бронирование
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Turf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"address",
		"price_per_hour",
		"created_at",
		"updated_at",
	).
		From("turfs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var turf domain.Turf
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&turf.ID,
		&turf.Name,
		&turf.Address,
		&turf.PricePerHour,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTurfNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan turf: %v", ErrScanRow, err)
	}

	turf.CreatedAt = createdAt.Time
	turf.UpdatedAt = updatedAt.Time

	return &turf, nil
}
