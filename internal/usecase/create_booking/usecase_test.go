package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
	turfRepo "github.com/TheMidnightCodeGuild/turfujn/internal/infra/storage/turf"
	userRepo "github.com/TheMidnightCodeGuild/turfujn/internal/infra/storage/user"
)

// --- Фейки ---

type fakeBookingRepo struct {
	existing  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) GetByTurfWithFilter(_ context.Context, _ domain.TurfBookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *booking
	if created.ID == "" {
		created.ID = "booking-1"
	}
	created.CreatedAt = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

type fakeUserRepo struct {
	profile   *domain.UserProfile
	getErr    error
	appendErr error
	appended  []string
}

func (f *fakeUserRepo) GetByUserID(_ context.Context, _ string) (*domain.UserProfile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.profile, nil
}

func (f *fakeUserRepo) AppendBookingID(_ context.Context, _ string, bookingID string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, bookingID)
	return nil
}

type fakeTurfRepo struct {
	turf *domain.Turf
	err  error
}

func (f *fakeTurfRepo) GetByID(_ context.Context, _ string) (*domain.Turf, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.turf, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
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

func newTestUseCase(
	bookingRepo *fakeBookingRepo,
	users *fakeUserRepo,
	turfs *fakeTurfRepo,
	now time.Time,
) (*UseCase, *fakeTxManager) {
	txMgr := &fakeTxManager{}
	uc := NewUseCase(bookingRepo, users, turfs, domain.DefaultSlotCatalog(), txMgr, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc, txMgr
}

func testProfile() *domain.UserProfile {
	return &domain.UserProfile{UserID: "user-1", Name: "Rahul"}
}

func testTurf() *domain.Turf {
	return &domain.Turf{ID: "turf-1", Name: "Green Field Arena"}
}

// 1 июня 2025, 09:00 UTC
var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		UserID: "user-1",
		TurfID: "turf-1",
		Date:   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Slots:  []string{"9am-10am", "10am-11am"},
	}
}

// --- Тесты ---

func TestCreateBooking_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	users := &fakeUserRepo{profile: testProfile()}
	uc, txMgr := newTestUseCase(bookings, users, &fakeTurfRepo{turf: testTurf()}, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, "reserved", resp.Status)
	assert.Equal(t, "Green Field Arena", resp.TurfName)
	assert.Equal(t, "Rahul", resp.BookerName)
	assert.Equal(t, []string{"9am-10am", "10am-11am"}, resp.Slots)
	assert.True(t, resp.IndexUpdated)
	assert.Equal(t, 1, txMgr.calls)

	// Индекс пользователя дописан вторым шагом
	assert.Equal(t, []string{"booking-1"}, users.appended)

	// День бронирования нормализован к полуночи UTC
	assert.True(t, resp.BookingDate.Equal(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)))
}

func TestCreateBooking_BookerNameOverride(t *testing.T) {
	users := &fakeUserRepo{profile: testProfile()}
	uc, _ := newTestUseCase(&fakeBookingRepo{}, users, &fakeTurfRepo{turf: testTurf()}, testNow)

	req := validRequest()
	req.BookerName = "Amit"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Amit", resp.BookerName)
}

func TestCreateBooking_SlotsNormalized(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc, _ := newTestUseCase(bookings, &fakeUserRepo{profile: testProfile()}, &fakeTurfRepo{turf: testTurf()}, testNow)

	// Дубликаты и порядок не из каталога
	req := validRequest()
	req.Slots = []string{"10am-11am", "9am-10am", "10am-11am"}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	// Слоты схлопнуты и упорядочены по каталогу
	assert.Equal(t, []string{"9am-10am", "10am-11am"}, resp.Slots)
}

func TestCreateBooking_SlotConflict(t *testing.T) {
	tests := []struct {
		name     string
		existing []*domain.Booking
		wantErr  error
	}{
		{
			name: "active booking holds the slot",
			existing: []*domain.Booking{
				{ID: "other", Status: domain.StatusReserved, Slots: []string{"9am-10am"}},
			},
			wantErr: ErrSlotAlreadyTaken,
		},
		{
			name: "confirmed booking holds the slot",
			existing: []*domain.Booking{
				{ID: "other", Status: domain.StatusConfirmed, Slots: []string{"10am-11am"}},
			},
			wantErr: ErrSlotAlreadyTaken,
		},
		{
			name: "cancelled booking does not hold the slot",
			existing: []*domain.Booking{
				{ID: "other", Status: domain.StatusCancelled, Slots: []string{"9am-10am", "10am-11am"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(
				&fakeBookingRepo{existing: tt.existing},
				&fakeUserRepo{profile: testProfile()},
				&fakeTurfRepo{turf: testTurf()},
				testNow,
			)

			resp, err := uc.Execute(context.Background(), validRequest())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCreateBooking_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "empty slot selection",
			mutate:  func(req *Request) { req.Slots = nil },
			wantErr: ErrEmptySlotSelection,
		},
		{
			name:    "unknown slot id",
			mutate:  func(req *Request) { req.Slots = []string{"7am-8am"} },
			wantErr: ErrUnknownSlot,
		},
		{
			name:    "missing user id",
			mutate:  func(req *Request) { req.UserID = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing turf id",
			mutate:  func(req *Request) { req.TurfID = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name: "booker name too long",
			mutate: func(req *Request) {
				name := make([]byte, domain.MaxBookerNameLength+1)
				for i := range name {
					name[i] = 'a'
				}
				req.BookerName = string(name)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "date in the past",
			mutate: func(req *Request) {
				req.Date = time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
			},
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(
				&fakeBookingRepo{},
				&fakeUserRepo{profile: testProfile()},
				&fakeTurfRepo{turf: testTurf()},
				testNow,
			)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateBooking_StartedSlotsRejectedToday(t *testing.T) {
	// Сейчас 09:00 UTC 1 июня: слот 9am-10am уже начался
	tests := []struct {
		name    string
		slots   []string
		wantErr error
	}{
		{
			name:    "slot starting at current hour counts as started",
			slots:   []string{"9am-10am"},
			wantErr: ErrSlotInPast,
		},
		{
			name:    "earlier slot has started",
			slots:   []string{"8am-9am"},
			wantErr: ErrSlotInPast,
		},
		{
			name:  "next hour is still bookable",
			slots: []string{"10am-11am"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(
				&fakeBookingRepo{},
				&fakeUserRepo{profile: testProfile()},
				&fakeTurfRepo{turf: testTurf()},
				testNow,
			)

			req := validRequest()
			req.Date = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) // сегодня
			req.Slots = tt.slots

			_, err := uc.Execute(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCreateBooking_StartedRuleNotAppliedTomorrow(t *testing.T) {
	// Для будущих дат правило "слот начался" не действует
	uc, _ := newTestUseCase(
		&fakeBookingRepo{},
		&fakeUserRepo{profile: testProfile()},
		&fakeTurfRepo{turf: testTurf()},
		testNow,
	)

	req := validRequest()
	req.Slots = []string{"8am-9am"}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestCreateBooking_NotFound(t *testing.T) {
	t.Run("user not found", func(t *testing.T) {
		uc, _ := newTestUseCase(
			&fakeBookingRepo{},
			&fakeUserRepo{getErr: userRepo.ErrUserNotFound},
			&fakeTurfRepo{turf: testTurf()},
			testNow,
		)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("turf not found", func(t *testing.T) {
		uc, _ := newTestUseCase(
			&fakeBookingRepo{},
			&fakeUserRepo{profile: testProfile()},
			&fakeTurfRepo{err: turfRepo.ErrTurfNotFound},
			testNow,
		)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrTurfNotFound)
	})
}

func TestCreateBooking_IndexUpdateFailureIsPartialSuccess(t *testing.T) {
	// Сбой записи индекса не откатывает бронирование:
	// ответ различимый, с IndexUpdated=false
	bookings := &fakeBookingRepo{}
	users := &fakeUserRepo{
		profile:   testProfile(),
		appendErr: errors.New("write timeout"),
	}
	uc, _ := newTestUseCase(bookings, users, &fakeTurfRepo{turf: testTurf()}, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.IndexUpdated)
	assert.NotNil(t, bookings.created)
	assert.Empty(t, users.appended)
}

func TestCreateBooking_CreateFailureAbortsWithoutIndexWrite(t *testing.T) {
	users := &fakeUserRepo{profile: testProfile()}
	uc, _ := newTestUseCase(
		&fakeBookingRepo{createErr: errors.New("insert failed")},
		users,
		&fakeTurfRepo{turf: testTurf()},
		testNow,
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, users.appended)
}

func TestCreateBooking_BookThenCheck(t *testing.T) {
	// Забронированный слот сразу виден занятым при повторной проверке
	bookings := &fakeBookingRepo{}
	uc, _ := newTestUseCase(bookings, &fakeUserRepo{profile: testProfile()}, &fakeTurfRepo{turf: testTurf()}, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	bookings.existing = append(bookings.existing, bookings.created)

	_, err = uc.Execute(context.Background(), &Request{
		UserID: "user-2",
		TurfID: "turf-1",
		Date:   resp.BookingDate,
		Slots:  []string{"9am-10am"},
	})
	assert.ErrorIs(t, err, ErrSlotAlreadyTaken)
}
