package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusReserved  BookingStatus = "reserved"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a claim on one or more catalog slots for a turf-day by a user
type Booking struct {
	ID          string
	UserID      string
	TurfID      string
	BookingDate time.Time // day bucket, normalized to UTC midnight
	Slots       []string  // catalog slot ids, non-empty, unique
	Status      BookingStatus

	// Denormalized data for history
	TurfName   string
	BookerName string // display name at the time of booking

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slots
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusReserved || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// TurfBookingsFilter фильтр для получения бронирований площадки
type TurfBookingsFilter struct {
	TurfID           string         // Обязательный параметр
	StartDate        *time.Time     // Начало периода (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отмененные бронирования
}

// DayUTC normalizes t to its UTC day bucket (midnight, time-of-day discarded).
// All day-bucket math in the service goes through this helper so that the read
// and write paths agree on where a calendar day starts.
func DayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
