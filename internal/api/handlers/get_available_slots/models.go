package get_available_slots

import (
	"time"

	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
	getAvailableSlots "github.com/TheMidnightCodeGuild/turfujn/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	TurfID string          `json:"turfId"`
	Date   string          `json:"date"`
	Slots  []AvailableSlot `json:"slots"`
}

// AvailableSlot модель слота дня с признаками доступности
type AvailableSlot struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
	Available bool   `json:"available"`
	Booked    bool   `json:"booked"`
	Started   bool   `json:"started"`
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(turfID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		TurfID: turfID,
		Date:   date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:        slot.ID,
			Label:     slot.Label,
			StartHour: slot.StartHour,
			EndHour:   slot.EndHour,
			Available: slot.Available,
			Booked:    slot.Booked,
			Started:   slot.Started,
		}
	}

	return &AvailableSlotsResponse{
		TurfID: resp.TurfID,
		Date:   resp.Date.Format(domain.DateFormat),
		Slots:  slots,
	}
}
