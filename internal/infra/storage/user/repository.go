package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
	"github.com/TheMidnightCodeGuild/turfujn/pkg/dbmetrics"
	"github.com/TheMidnightCodeGuild/turfujn/pkg/psqlbuilder"
)

// Repository репозиторий для работы с профилями пользователей
// Хранит денормализованный индекс бронирований (booking_ids) -
// append-only список ID для быстрой выборки "моих бронирований"
// без обратного запроса по коллекции бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserID получает профиль пользователя по его ID
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"user_id",
		"name",
		"email",
		"avatar",
		"booking_ids",
		"created_at",
		"updated_at",
	).
		From("users").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var profile domain.UserProfile
	var bookingIDs pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.Email,
		&profile.Avatar,
		&bookingIDs,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan profile: %v", ErrScanRow, err)
	}

	profile.BookingIDs = []string(bookingIDs)
	profile.CreatedAt = createdAt.Time
	profile.UpdatedAt = updatedAt.Time

	return &profile, nil
}

// Create создает профиль пользователя с пустым индексом бронирований
func (r *Repository) Create(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("user_id", "name", "email", "avatar", "booking_ids").
		Values(profile.UserID, profile.Name, profile.Email, profile.Avatar, pq.Array([]string{})).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	profile.BookingIDs = []string{}
	profile.CreatedAt = createdAt.Time
	profile.UpdatedAt = updatedAt.Time

	return profile, nil
}

// AppendBookingID дописывает ID бронирования в конец индекса пользователя
// Индекс append-only: записи не удаляются даже при отмене бронирования
func (r *Repository) AppendBookingID(ctx context.Context, userID string, bookingID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("booking_ids", squirrel.Expr("array_append(booking_ids, ?)", bookingID)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AppendBookingID - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AppendBookingID - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AppendBookingID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
