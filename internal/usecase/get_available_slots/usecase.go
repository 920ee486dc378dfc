package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
	turfRepo "github.com/TheMidnightCodeGuild/turfujn/internal/infra/storage/turf"
	"github.com/TheMidnightCodeGuild/turfujn/pkg/ptr"
)

// UseCase use case получения слотов дня с признаками доступности
// Используется UI для отрисовки сетки слотов с заблокированными ячейками
type UseCase struct {
	bookingRepo  BookingRepository
	turfRepo     TurfRepository
	catalog      *domain.SlotCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	turfRepo TurfRepository,
	catalog *domain.SlotCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		turfRepo:     turfRepo,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: turf=%s, date=%s",
		req.TurfID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование площадки
	if _, err := uc.turfRepo.GetByID(ctx, req.TurfID); err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			uc.logger.Warn("GetAvailableSlots: turf id=%s not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get turf id=%s: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	// 3. Получаем активные бронирования площадки в границах дня (UTC)
	day := domain.DayUTC(req.Date)
	filter := domain.TurfBookingsFilter{
		TurfID:    req.TurfID,
		StartDate: ptr.Ptr(day),
		EndDate:   ptr.Ptr(day),
	}

	bookings, err := uc.bookingRepo.GetByTurfWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Размечаем каталог признаками доступности
	now := uc.timeProvider.Now()
	slots := buildDaySlots(uc.catalog, bookings, day, now)

	uc.logger.Info("GetAvailableSlots: turf=%s, date=%s: %d slots",
		req.TurfID, day.Format(domain.DateFormat), len(slots))

	return &Response{
		TurfID: req.TurfID,
		Date:   day,
		Slots:  slots,
	}, nil
}
