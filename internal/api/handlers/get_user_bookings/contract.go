package get_user_bookings

import (
	"context"

	"github.com/TheMidnightCodeGuild/turfujn/internal/service/bookings/models"
)

type BookingService interface {
	GetUserBookings(ctx context.Context, userID string) (*models.UserBookingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
