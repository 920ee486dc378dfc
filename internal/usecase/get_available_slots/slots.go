package get_available_slots

import (
	"time"

	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
)

// buildDaySlots размечает каталог слотов признаками доступности на день
//
// Слот недоступен, если:
//   - он занят активным бронированием (booked), или
//   - запрошенный день - сегодня и слот уже начался: startHour <= текущего
//     часа (started). Это правило накладывается поверх результата резолвера
//     и вычисляется независимо от него, по каждому слоту
//
// Для дат в прошлом все слоты считаются начавшимися
func buildDaySlots(
	catalog *domain.SlotCatalog,
	bookings []*domain.Booking,
	requestDay time.Time,
	now time.Time,
) []Slot {
	occupied := occupiedSlotSet(bookings)

	today := domain.DayUTC(now)
	isToday := requestDay.Equal(today)
	isPast := requestDay.Before(today)
	currentHour := now.UTC().Hour()

	catalogSlots := catalog.ListSlots()
	result := make([]Slot, len(catalogSlots))

	for i, slot := range catalogSlots {
		_, booked := occupied[slot.ID]
		started := isPast || (isToday && slot.HasStarted(currentHour))

		result[i] = Slot{
			ID:        slot.ID,
			Label:     slot.Label,
			StartHour: slot.StartHour,
			EndHour:   slot.EndHour,
			Available: !booked && !started,
			Booked:    booked,
			Started:   started,
		}
	}

	return result
}

// occupiedSlotSet строит множество занятых слотов из активных бронирований
func occupiedSlotSet(bookings []*domain.Booking) map[string]struct{} {
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
