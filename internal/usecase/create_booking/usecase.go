package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
	turfRepo "github.com/TheMidnightCodeGuild/turfujn/internal/infra/storage/turf"
	userRepo "github.com/TheMidnightCodeGuild/turfujn/internal/infra/storage/user"
	"github.com/TheMidnightCodeGuild/turfujn/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	turfRepo     TurfRepository
	catalog      *domain.SlotCatalog
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	turfRepo TurfRepository,
	catalog *domain.SlotCatalog,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		turfRepo:     turfRepo,
		catalog:      catalog,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Запись двухфазная:
//  1. Бронирование создается в сериализуемой транзакции, внутри которой
//     занятость слотов перечитывается с блокировкой дня (FOR UPDATE).
//     Конфликт двух конкурентных бронирований одного слота завершается
//     ErrSlotAlreadyTaken, а не двойным бронированием.
//  2. ID бронирования дописывается в индекс пользователя отдельной записью.
//     Сбой на этом шаге не откатывает бронирование: ответ возвращается
//     с IndexUpdated=false (частичный успех, требуется сверка)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, turf=%s, date=%s, slots=%v",
		req.UserID, req.TurfID, req.Date.Format(domain.DateFormat), req.Slots)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.catalog); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и нормализуем день бронирования (UTC)
	now := uc.timeProvider.Now()
	bookingDay := domain.DayUTC(req.Date)

	// 3. Валидация даты и проверка, что слоты еще не начались
	if err := validateDate(bookingDay, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}
	if err := validateSlotsNotStarted(req.Slots, bookingDay, now, uc.catalog); err != nil {
		uc.logger.Warn("CreateBooking: slot time validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем профиль пользователя
	profile, err := uc.userRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%s not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// Имя для бронирования: из запроса или из профиля
	bookerName := req.BookerName
	if bookerName == "" {
		bookerName = profile.Name
	}

	// 5. Получаем площадку (денормализуем название в бронирование)
	turf, err := uc.turfRepo.GetByID(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			uc.logger.Warn("CreateBooking: turf id=%s not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("CreateBooking: failed to get turf id=%s: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	slots := normalizeSlots(req.Slots, uc.catalog)

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Создаем бронирование в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Перечитываем активные бронирования дня с блокировкой (FOR UPDATE)
		filter := domain.TurfBookingsFilter{
			TurfID:    req.TurfID,
			StartDate: ptr.Ptr(bookingDay),
			EndDate:   ptr.Ptr(bookingDay),
		}

		existing, err := uc.bookingRepo.GetByTurfWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Проверяем занятость запрошенных слотов
		if taken := firstTakenSlot(slots, existing); taken != "" {
			uc.logger.Warn("CreateBooking: slot %q already taken, turf=%s, date=%s",
				taken, req.TurfID, bookingDay.Format(domain.DateFormat))
			return fmt.Errorf("%w: %q", ErrSlotAlreadyTaken, taken)
		}

		// 6.3. Сохраняем бронирование
		booking := &domain.Booking{
			UserID:      req.UserID,
			TurfID:      req.TurfID,
			BookingDate: bookingDay,
			Slots:       slots,
			Status:      domain.StatusReserved,
			TurfName:    turf.Name,
			BookerName:  bookerName,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 7. Дописываем ID бронирования в индекс пользователя (вторая запись)
	indexUpdated := true
	if err := uc.userRepo.AppendBookingID(ctx, req.UserID, result.ID); err != nil {
		// Бронирование уже создано и занимает слоты, но не попадет
		// в "мои бронирования" - возвращаем различимый частичный успех
		uc.logger.Error("CreateBooking: booking id=%s created but index update failed for user=%s: %v",
			result.ID, req.UserID, err)
		indexUpdated = false
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s (indexUpdated=%t)",
		result.ID, indexUpdated)

	return &Response{
		ID:           result.ID,
		UserID:       result.UserID,
		TurfID:       result.TurfID,
		TurfName:     result.TurfName,
		BookingDate:  result.BookingDate,
		Slots:        result.Slots,
		Status:       string(result.Status),
		BookerName:   result.BookerName,
		IndexUpdated: indexUpdated,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// firstTakenSlot возвращает первый запрошенный слот, занятый активным
// бронированием, или пустую строку, если все свободны
func firstTakenSlot(requested []string, bookings []*domain.Booking) string {
	occupied := make(map[string]struct{})
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		for _, slotID := range b.Slots {
			occupied[slotID] = struct{}{}
		}
	}

	for _, slotID := range requested {
		if _, taken := occupied[slotID]; taken {
			return slotID
		}
	}

	return ""
}
