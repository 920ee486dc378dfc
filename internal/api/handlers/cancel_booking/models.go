package cancel_booking

import "github.com/TheMidnightCodeGuild/turfujn/internal/service/bookings/models"

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// UserID берется из контекста аутентификации, а не из тела запроса
func (r *CancelBookingRequest) ToServiceRequest(userID string) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		UserID:             userID,
		CancellationReason: r.CancellationReason,
	}
}
