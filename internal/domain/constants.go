package domain

// Catalog boundaries for the default deployment
const (
	CatalogOpeningHour = 8
	CatalogClosingHour = 24
)

// Business validation constants
const (
	MaxBookerNameLength         = 100
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ValidStatuses список допустимых статусов бронирования
var ValidStatuses = []BookingStatus{
	StatusReserved,
	StatusConfirmed,
	StatusCancelled,
}
