package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
)

func activeBooking(slots ...string) *domain.Booking {
	return &domain.Booking{ID: "b1", Status: domain.StatusReserved, Slots: slots}
}

func slotByID(t *testing.T, slots []Slot, id string) Slot {
	t.Helper()
	for _, s := range slots {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("slot %q not found", id)
	return Slot{}
}

func TestBuildDaySlots_FutureDay(t *testing.T) {
	catalog := domain.DefaultSlotCatalog()
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	slots := buildDaySlots(catalog, []*domain.Booking{activeBooking("9am-10am")}, day, now)

	require.Len(t, slots, 16)

	booked := slotByID(t, slots, "9am-10am")
	assert.True(t, booked.Booked)
	assert.False(t, booked.Started)
	assert.False(t, booked.Available)

	free := slotByID(t, slots, "10am-11am")
	assert.False(t, free.Booked)
	assert.False(t, free.Started)
	assert.True(t, free.Available)
}

func TestBuildDaySlots_Today(t *testing.T) {
	catalog := domain.DefaultSlotCatalog()
	// Сейчас 09:30 UTC: слоты с startHour <= 9 уже начались
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	day := domain.DayUTC(now)

	slots := buildDaySlots(catalog, nil, day, now)

	started := slotByID(t, slots, "9am-10am")
	assert.True(t, started.Started)
	assert.False(t, started.Available)

	earlier := slotByID(t, slots, "8am-9am")
	assert.True(t, earlier.Started)

	next := slotByID(t, slots, "10am-11am")
	assert.False(t, next.Started)
	assert.True(t, next.Available)
}

func TestBuildDaySlots_TodayBookedAndStartedIndependent(t *testing.T) {
	catalog := domain.DefaultSlotCatalog()
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	day := domain.DayUTC(now)

	slots := buildDaySlots(catalog, []*domain.Booking{activeBooking("8am-9am", "5pm-6pm")}, day, now)

	// Занят и уже начался
	both := slotByID(t, slots, "8am-9am")
	assert.True(t, both.Booked)
	assert.True(t, both.Started)
	assert.False(t, both.Available)

	// Занят, но еще не начался
	bookedOnly := slotByID(t, slots, "5pm-6pm")
	assert.True(t, bookedOnly.Booked)
	assert.False(t, bookedOnly.Started)
	assert.False(t, bookedOnly.Available)
}

func TestBuildDaySlots_PastDayAllStarted(t *testing.T) {
	catalog := domain.DefaultSlotCatalog()
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	day := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	slots := buildDaySlots(catalog, nil, day, now)

	for _, s := range slots {
		assert.True(t, s.Started, "slot %q should be started for a past day", s.ID)
		assert.False(t, s.Available)
	}
}

func TestBuildDaySlots_CancelledBookingsIgnored(t *testing.T) {
	catalog := domain.DefaultSlotCatalog()
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	cancelled := &domain.Booking{ID: "b1", Status: domain.StatusCancelled, Slots: []string{"9am-10am"}}
	slots := buildDaySlots(catalog, []*domain.Booking{cancelled}, day, now)

	slot := slotByID(t, slots, "9am-10am")
	assert.False(t, slot.Booked)
	assert.True(t, slot.Available)
}
