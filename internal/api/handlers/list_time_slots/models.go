package list_time_slots

import "github.com/TheMidnightCodeGuild/turfujn/internal/domain"

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	Slots []TimeSlot `json:"slots"`
}

// TimeSlot модель слота каталога
type TimeSlot struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
}

// FromCatalog конвертирует каталог слотов в HTTP response
func FromCatalog(catalog *domain.SlotCatalog) *TimeSlotsResponse {
	domainSlots := catalog.ListSlots()

	slots := make([]TimeSlot, len(domainSlots))
	for i, slot := range domainSlots {
		slots[i] = TimeSlot{
			ID:        slot.ID,
			Label:     slot.Label,
			StartHour: slot.StartHour,
			EndHour:   slot.EndHour,
		}
	}

	return &TimeSlotsResponse{Slots: slots}
}
