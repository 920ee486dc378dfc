package domain

import (
	"errors"
	"fmt"
	"sort"
)

// ErrSlotNotFound возвращается, когда слот отсутствует в каталоге
var ErrSlotNotFound = errors.New("domain: time slot not found in catalog")

// SlotCatalog is the fixed vocabulary of bookable intervals for a single
// calendar day. It is immutable after construction and shared by the
// availability resolver and the booking writer.
type SlotCatalog struct {
	slots []TimeSlot
	byID  map[string]TimeSlot
}

// NewSlotCatalog builds a catalog from the given slots, ordered ascending by
// StartHour. Slot ids must be unique.
func NewSlotCatalog(slots []TimeSlot) (*SlotCatalog, error) {
	ordered := make([]TimeSlot, len(slots))
	copy(ordered, slots)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].StartHour < ordered[j].StartHour
	})

	byID := make(map[string]TimeSlot, len(ordered))
	for _, s := range ordered {
		if s.StartHour < 0 || s.EndHour > 24 || s.StartHour >= s.EndHour {
			return nil, fmt.Errorf("domain: invalid slot interval %q: [%d, %d)", s.ID, s.StartHour, s.EndHour)
		}
		if _, exists := byID[s.ID]; exists {
			return nil, fmt.Errorf("domain: duplicate slot id %q", s.ID)
		}
		byID[s.ID] = s
	}

	return &SlotCatalog{slots: ordered, byID: byID}, nil
}

// ListSlots returns all catalog slots ordered ascending by StartHour.
// The result is a copy; callers may not mutate the catalog.
func (c *SlotCatalog) ListSlots() []TimeSlot {
	out := make([]TimeSlot, len(c.slots))
	copy(out, c.slots)
	return out
}

// FindByID looks up a slot by its id
func (c *SlotCatalog) FindByID(id string) (TimeSlot, error) {
	s, ok := c.byID[id]
	if !ok {
		return TimeSlot{}, fmt.Errorf("%w: %q", ErrSlotNotFound, id)
	}
	return s, nil
}

// Contains reports whether the catalog has a slot with the given id
func (c *SlotCatalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of slots in the catalog
func (c *SlotCatalog) Len() int {
	return len(c.slots)
}

// DefaultSlotCatalog returns the production catalog: 16 one-hour slots
// covering 08:00 through midnight.
func DefaultSlotCatalog() *SlotCatalog {
	slots := make([]TimeSlot, 0, CatalogClosingHour-CatalogOpeningHour)
	for hour := CatalogOpeningHour; hour < CatalogClosingHour; hour++ {
		slots = append(slots, TimeSlot{
			ID:        fmt.Sprintf("%s-%s", hourToken(hour), hourToken(hour+1)),
			Label:     fmt.Sprintf("%s - %s", hourLabel(hour), hourLabel(hour+1)),
			StartHour: hour,
			EndHour:   hour + 1,
		})
	}

	catalog, err := NewSlotCatalog(slots)
	if err != nil {
		// Статический каталог, ошибка здесь - программная
		panic(err)
	}
	return catalog
}

// hourToken renders an hour as the compact id token: 8 -> "8am", 12 -> "12pm",
// 24 -> "12am".
func hourToken(hour int) string {
	switch {
	case hour == 0 || hour == 24:
		return "12am"
	case hour < 12:
		return fmt.Sprintf("%dam", hour)
	case hour == 12:
		return "12pm"
	default:
		return fmt.Sprintf("%dpm", hour-12)
	}
}

// hourLabel renders an hour for display: 8 -> "8:00 AM", 24 -> "12:00 AM"
func hourLabel(hour int) string {
	switch {
	case hour == 0 || hour == 24:
		return "12:00 AM"
	case hour < 12:
		return fmt.Sprintf("%d:00 AM", hour)
	case hour == 12:
		return "12:00 PM"
	default:
		return fmt.Sprintf("%d:00 PM", hour-12)
	}
}
