package create_booking

import (
	"fmt"
	"time"

	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, catalog *domain.SlotCatalog) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.TurfID == "" {
		return fmt.Errorf("%w: turfID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.Slots) == 0 {
		return ErrEmptySlotSelection
	}

	// Все слоты должны существовать в каталоге
	for _, slotID := range req.Slots {
		if !catalog.Contains(slotID) {
			return fmt.Errorf("%w: %q", ErrUnknownSlot, slotID)
		}
	}

	if len(req.BookerName) > domain.MaxBookerNameLength {
		return fmt.Errorf("%w: bookerName exceeds %d characters", ErrInvalidInput, domain.MaxBookerNameLength)
	}

	return nil
}

// normalizeSlots схлопывает дубликаты и упорядочивает слоты по каталогу
// (по возрастанию startHour)
func normalizeSlots(slots []string, catalog *domain.SlotCatalog) []string {
	requested := make(map[string]struct{}, len(slots))
	for _, id := range slots {
		requested[id] = struct{}{}
	}

	normalized := make([]string, 0, len(requested))
	for _, slot := range catalog.ListSlots() {
		if _, ok := requested[slot.ID]; ok {
			normalized = append(normalized, slot.ID)
		}
	}

	return normalized
}

// validateDate проверяет, что день бронирования не в прошлом
func validateDate(bookingDay time.Time, now time.Time) error {
	if bookingDay.Before(domain.DayUTC(now)) {
		return ErrInvalidDate
	}
	return nil
}

// validateSlotsNotStarted отклоняет уже начавшиеся сегодня слоты
// Слот с startHour, равным текущему часу, считается начавшимся
func validateSlotsNotStarted(slots []string, bookingDay time.Time, now time.Time, catalog *domain.SlotCatalog) error {
	if !bookingDay.Equal(domain.DayUTC(now)) {
		return nil
	}

	currentHour := now.UTC().Hour()
	for _, slotID := range slots {
		slot, err := catalog.FindByID(slotID)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownSlot, slotID)
		}
		if slot.HasStarted(currentHour) {
			return fmt.Errorf("%w: %q", ErrSlotInPast, slotID)
		}
	}

	return nil
}
