package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
	bookingRepo "github.com/TheMidnightCodeGuild/turfujn/internal/infra/storage/booking"
	userRepo "github.com/TheMidnightCodeGuild/turfujn/internal/infra/storage/user"
	"github.com/TheMidnightCodeGuild/turfujn/internal/service/bookings/models"
)

// --- Фейки ---

type fakeBookingRepo struct {
	byID map[string]*domain.Booking

	updatedStatus map[string]domain.BookingStatus
	cancelled     map[string]string
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	byID := make(map[string]*domain.Booking)
	for _, b := range bookings {
		byID[b.ID] = b
	}
	return &fakeBookingRepo{
		byID:          byID,
		updatedStatus: make(map[string]domain.BookingStatus),
		cancelled:     make(map[string]string),
	}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByIDs(_ context.Context, ids []string) ([]*domain.Booking, error) {
	// Порядок индекса сохраняется, отсутствующие ID молча пропускаются
	result := make([]*domain.Booking, 0, len(ids))
	for _, id := range ids {
		if b, ok := f.byID[id]; ok {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedStatus[id] = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id string, reason string) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelled[id] = reason
	return nil
}

type fakeUserRepo struct {
	profile *domain.UserProfile
}

func (f *fakeUserRepo) GetByUserID(_ context.Context, _ string) (*domain.UserProfile, error) {
	if f.profile == nil {
		return nil, userRepo.ErrUserNotFound
	}
	return f.profile, nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Вспомогательные конструкторы ---

// Сейчас 1 июня 2025
var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(bookings *fakeBookingRepo, users *fakeUserRepo) *Service {
	svc := NewService(bookings, users, domain.DefaultSlotCatalog(), nopLogger{})
	svc.timeProvider = fixedTime{now: testNow}
	return svc
}

func testBooking(id, userID string, date time.Time, slots ...string) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		UserID:      userID,
		TurfID:      "turf-1",
		TurfName:    "Green Field Arena",
		BookingDate: date,
		Slots:       slots,
		Status:      domain.StatusReserved,
	}
}

// --- Тесты ---

func TestGetByID(t *testing.T) {
	booking := testBooking("b1", "user-1",
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), "9am-10am")

	t.Run("owner can read", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo(booking), &fakeUserRepo{})

		resp, err := svc.GetByID(context.Background(), "b1", "user-1")
		require.NoError(t, err)
		assert.Equal(t, "b1", resp.ID)
		assert.Equal(t, "Green Field Arena", resp.TurfName)
	})

	t.Run("other user is denied", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo(booking), &fakeUserRepo{})

		_, err := svc.GetByID(context.Background(), "b1", "user-2")
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo(), &fakeUserRepo{})

		_, err := svc.GetByID(context.Background(), "missing", "user-1")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestGetUserBookings(t *testing.T) {
	upcoming := testBooking("b-upcoming", "user-1",
		time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), "9am-10am")
	today := testBooking("b-today", "user-1",
		domain.DayUTC(testNow), "5pm-6pm")
	past := testBooking("b-past", "user-1",
		time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), "9am-10am")

	t.Run("bookings come from the index in order", func(t *testing.T) {
		users := &fakeUserRepo{profile: &domain.UserProfile{
			UserID:     "user-1",
			Name:       "Rahul",
			BookingIDs: []string{"b-past", "b-upcoming", "b-today"},
		}}
		svc := newTestService(newFakeBookingRepo(upcoming, today, past), users)

		resp, err := svc.GetUserBookings(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, "Rahul", resp.Name)
		require.Len(t, resp.Bookings, 3)
		assert.Equal(t, "b-past", resp.Bookings[0].ID)
		assert.Equal(t, "b-upcoming", resp.Bookings[1].ID)
		assert.Equal(t, "b-today", resp.Bookings[2].ID)
	})

	t.Run("period partition relative to today", func(t *testing.T) {
		users := &fakeUserRepo{profile: &domain.UserProfile{
			UserID:     "user-1",
			BookingIDs: []string{"b-past", "b-today", "b-upcoming"},
		}}
		svc := newTestService(newFakeBookingRepo(upcoming, today, past), users)

		resp, err := svc.GetUserBookings(context.Background(), "user-1")
		require.NoError(t, err)

		assert.Equal(t, models.PeriodPast, resp.Bookings[0].Period)
		// Сегодняшнее бронирование относится к предстоящим
		assert.Equal(t, models.PeriodUpcoming, resp.Bookings[1].Period)
		assert.Equal(t, models.PeriodUpcoming, resp.Bookings[2].Period)
	})

	t.Run("dangling index ids are skipped", func(t *testing.T) {
		users := &fakeUserRepo{profile: &domain.UserProfile{
			UserID:     "user-1",
			BookingIDs: []string{"b-upcoming", "lost-by-partial-write"},
		}}
		svc := newTestService(newFakeBookingRepo(upcoming), users)

		resp, err := svc.GetUserBookings(context.Background(), "user-1")
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "b-upcoming", resp.Bookings[0].ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo(), &fakeUserRepo{})

		_, err := svc.GetUserBookings(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestBookingResponse_SlotsSortedWithLabels(t *testing.T) {
	// Слоты хранятся в произвольном порядке, отображаются отсортированными
	// лексикографически, с названиями из каталога
	booking := testBooking("b1", "user-1",
		time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		"9am-10am", "10am-11am", "unknown-slot")

	svc := newTestService(newFakeBookingRepo(booking), &fakeUserRepo{})

	resp, err := svc.GetByID(context.Background(), "b1", "user-1")
	require.NoError(t, err)

	// Лексикографический порядок: "10am-11am" < "9am-10am";
	// неизвестный каталогу ID пропущен
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "10am-11am", resp.Slots[0].ID)
	assert.Equal(t, "10:00 AM - 11:00 AM", resp.Slots[0].Label)
	assert.Equal(t, "9am-10am", resp.Slots[1].ID)
	assert.Equal(t, "9:00 AM - 10:00 AM", resp.Slots[1].Label)
}

func TestCancel(t *testing.T) {
	date := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	t.Run("owner cancels reserved booking", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking("b1", "user-1", date, "9am-10am"))
		svc := newTestService(repo, &fakeUserRepo{})

		err := svc.Cancel(context.Background(), "b1", &models.CancelBookingRequest{
			UserID:             "user-1",
			CancellationReason: "rain",
		})
		require.NoError(t, err)
		assert.Equal(t, "rain", repo.cancelled["b1"])
	})

	t.Run("other user is denied", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking("b1", "user-1", date, "9am-10am"))
		svc := newTestService(repo, &fakeUserRepo{})

		err := svc.Cancel(context.Background(), "b1", &models.CancelBookingRequest{UserID: "user-2"})
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Empty(t, repo.cancelled)
	})

	t.Run("already cancelled", func(t *testing.T) {
		b := testBooking("b1", "user-1", date, "9am-10am")
		b.Status = domain.StatusCancelled
		svc := newTestService(newFakeBookingRepo(b), &fakeUserRepo{})

		err := svc.Cancel(context.Background(), "b1", &models.CancelBookingRequest{UserID: "user-1"})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("reason too long", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking("b1", "user-1", date, "9am-10am"))
		svc := newTestService(repo, &fakeUserRepo{})

		reason := make([]byte, domain.MaxCancellationReasonLength+1)
		for i := range reason {
			reason[i] = 'x'
		}

		err := svc.Cancel(context.Background(), "b1", &models.CancelBookingRequest{
			UserID:             "user-1",
			CancellationReason: string(reason),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo(), &fakeUserRepo{})

		err := svc.Cancel(context.Background(), "missing", &models.CancelBookingRequest{UserID: "user-1"})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestUpdateStatus(t *testing.T) {
	date := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	t.Run("reserved becomes confirmed", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking("b1", "user-1", date, "9am-10am"))
		svc := newTestService(repo, &fakeUserRepo{})

		err := svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus["b1"])
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking("b1", "user-1", date, "9am-10am"))
		svc := newTestService(repo, &fakeUserRepo{})

		err := svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{Status: "approved"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("cancellation goes through Cancel", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking("b1", "user-1", date, "9am-10am"))
		svc := newTestService(repo, &fakeUserRepo{})

		err := svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{Status: "cancelled"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("confirmed cannot be confirmed again", func(t *testing.T) {
		b := testBooking("b1", "user-1", date, "9am-10am")
		b.Status = domain.StatusConfirmed
		svc := newTestService(newFakeBookingRepo(b), &fakeUserRepo{})

		err := svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{Status: "confirmed"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo(), &fakeUserRepo{})

		err := svc.UpdateStatus(context.Background(), "missing", &models.UpdateStatusRequest{Status: "confirmed"})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
