package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
	turfRepo "github.com/TheMidnightCodeGuild/turfujn/internal/infra/storage/turf"
	"github.com/TheMidnightCodeGuild/turfujn/pkg/ptr"
)

// UseCase use case проверки доступности слотов (availability resolver)
// Операция read-only: вычисляет, какие слоты каталога уже заняты
// активными бронированиями площадки на указанную дату
type UseCase struct {
	bookingRepo BookingRepository
	turfRepo    TurfRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	turfRepo TurfRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		turfRepo:    turfRepo,
		logger:      logger,
	}
}

// Execute выполняет проверку доступности
// Границы дня считаются в UTC для обоих путей (чтения и записи),
// чтобы бронирования у полуночи не попадали в соседний день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: turf=%s, date=%s, candidates=%d",
		req.TurfID, req.Date.Format(domain.DateFormat), len(req.CandidateSlotIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование площадки
	if _, err := uc.turfRepo.GetByID(ctx, req.TurfID); err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			uc.logger.Warn("CheckAvailability: turf id=%s not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get turf id=%s: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrQueryFailed, err)
	}

	// 3. Получаем активные бронирования площадки в границах дня
	// Отмененные бронирования освобождают слоты и в выборку не попадают
	day := domain.DayUTC(req.Date)
	filter := domain.TurfBookingsFilter{
		TurfID:    req.TurfID,
		StartDate: ptr.Ptr(day),
		EndDate:   ptr.Ptr(day),
	}

	bookings, err := uc.bookingRepo.GetByTurfWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrQueryFailed, err)
	}

	// 4. Объединяем слоты всех бронирований и пересекаем с проверяемым набором
	unavailable := intersectOccupied(req.CandidateSlotIDs, bookings)

	uc.logger.Info("CheckAvailability: turf=%s, date=%s: %d of %d candidate slots taken",
		req.TurfID, day.Format(domain.DateFormat), len(unavailable), len(req.CandidateSlotIDs))

	return &Response{
		Available:        len(unavailable) == 0,
		UnavailableSlots: unavailable,
		ExistingBookings: bookings,
	}, nil
}

// intersectOccupied пересекает проверяемый набор слотов с объединением слотов
// всех бронирований. Порядок результата повторяет порядок кандидатов,
// дубликаты схлопываются
func intersectOccupied(candidates []string, bookings []*domain.Booking) []string {
	occupied := OccupiedSlotSet(bookings)

	unavailable := make([]string, 0)
	seen := make(map[string]struct{}, len(candidates))
	for _, id := range candidates {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, taken := occupied[id]; taken {
			unavailable = append(unavailable, id)
		}
	}

	return unavailable
}

// OccupiedSlotSet строит множество занятых слотов из бронирований
// Неактивные (отмененные) бронирования пропускаются
func OccupiedSlotSet(bookings []*domain.Booking) map[string]struct{} {
	occupied := make(map[string]struct{})
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		for _, slotID := range b.Slots {
			occupied[slotID] = struct{}{}
		}
	}
	return occupied
}
