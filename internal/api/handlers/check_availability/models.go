package check_availability

import (
	"strings"
	"time"

	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
	checkAvailability "github.com/TheMidnightCodeGuild/turfujn/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	TurfID           string   `json:"turfId"`
	Date             string   `json:"date"`
	Available        bool     `json:"available"`
	UnavailableSlots []string `json:"unavailableSlots"`
	ActiveBookings   int      `json:"activeBookings"`
}

// ToUseCaseRequest создает запрос use case из path и query параметров
// Пустой параметр slots означает проверку всего каталога
func ToUseCaseRequest(turfID, dateStr, slotsParam string, catalog *domain.SlotCatalog) (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	var candidates []string
	if slotsParam != "" {
		for _, id := range strings.Split(slotsParam, ",") {
			if trimmed := strings.TrimSpace(id); trimmed != "" {
				candidates = append(candidates, trimmed)
			}
		}
	} else {
		for _, slot := range catalog.ListSlots() {
			candidates = append(candidates, slot.ID)
		}
	}

	return &checkAvailability.Request{
		TurfID:           turfID,
		Date:             date,
		CandidateSlotIDs: candidates,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(turfID string, date time.Time, resp *checkAvailability.Response) *AvailabilityResponse {
	unavailable := resp.UnavailableSlots
	if unavailable == nil {
		unavailable = []string{}
	}

	return &AvailabilityResponse{
		TurfID:           turfID,
		Date:             domain.DayUTC(date).Format(domain.DateFormat),
		Available:        resp.Available,
		UnavailableSlots: unavailable,
		ActiveBookings:   len(resp.ExistingBookings),
	}
}
