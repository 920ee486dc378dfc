package create_booking

import (
	"time"

	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
	createBooking "github.com/TheMidnightCodeGuild/turfujn/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TurfID      string   `json:"turfId"`
	BookingDate string   `json:"bookingDate"` // "2025-06-01"
	Slots       []string `json:"slots"`
	BookerName  string   `json:"bookerName,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	TurfID      string   `json:"turfId"`
	TurfName    string   `json:"turfName"`
	BookingDate string   `json:"bookingDate"`
	Slots       []string `json:"slots"`
	Status      string   `json:"status"`
	BookerName  string   `json:"bookerName"`

	// IndexUpdated false означает, что бронирование создано, но не попало
	// в список бронирований пользователя
	IndexUpdated bool `json:"indexUpdated"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:     userID,
		TurfID:     r.TurfID,
		Date:       bookingDate,
		Slots:      r.Slots,
		BookerName: r.BookerName,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		TurfID:       resp.TurfID,
		TurfName:     resp.TurfName,
		BookingDate:  resp.BookingDate.Format(domain.DateFormat),
		Slots:        resp.Slots,
		Status:       resp.Status,
		BookerName:   resp.BookerName,
		IndexUpdated: resp.IndexUpdated,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
