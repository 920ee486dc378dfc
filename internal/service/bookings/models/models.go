package models

import (
	"errors"
	"sort"
	"time"

	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Period временная категория бронирования относительно текущего дня
const (
	PeriodUpcoming = "upcoming"
	PeriodPast     = "past"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             string `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// SlotView слот бронирования с отображаемым названием из каталога
type SlotView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	TurfID      string     `json:"turfId"`
	TurfName    string     `json:"turfName"`
	BookingDate string     `json:"bookingDate"` // "2025-06-01"
	Slots       []SlotView `json:"slots"`
	Status      string     `json:"status"`
	BookerName  string     `json:"bookerName"`
	Period      string     `json:"period"` // upcoming | past

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserBookingsResponse профиль пользователя с бронированиями,
// полученными через денормализованный индекс
type UserBookingsResponse struct {
	UserID   string            `json:"userId"`
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Avatar   string            `json:"avatar"`
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// Слоты сортируются лексикографически по ID и отображаются с названиями
// из каталога; ID, отсутствующие в каталоге, молча пропускаются
func FromDomainBooking(b *domain.Booking, catalog *domain.SlotCatalog, today time.Time) *BookingResponse {
	if b == nil {
		return nil
	}

	slotIDs := make([]string, len(b.Slots))
	copy(slotIDs, b.Slots)
	sort.Strings(slotIDs)

	slots := make([]SlotView, 0, len(slotIDs))
	for _, id := range slotIDs {
		slot, err := catalog.FindByID(id)
		if err != nil {
			continue
		}
		slots = append(slots, SlotView{ID: slot.ID, Label: slot.Label})
	}

	period := PeriodPast
	if !b.BookingDate.Before(domain.DayUTC(today)) {
		period = PeriodUpcoming
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		TurfID:             b.TurfID,
		TurfName:           b.TurfName,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		Slots:              slots,
		Status:             string(b.Status),
		BookerName:         b.BookerName,
		Period:             period,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainProfile собирает ответ из профиля и его бронирований
func FromDomainProfile(profile *domain.UserProfile, bookings []*domain.Booking, catalog *domain.SlotCatalog, today time.Time) *UserBookingsResponse {
	resp := &UserBookingsResponse{
		UserID:   profile.UserID,
		Name:     profile.Name,
		Email:    profile.Email,
		Avatar:   profile.Avatar,
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, catalog, today); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
