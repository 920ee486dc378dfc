package create_booking

import (
	"errors"
	"net/http"

	"github.com/TheMidnightCodeGuild/turfujn/internal/api/handlers"
	"github.com/TheMidnightCodeGuild/turfujn/internal/api/middleware"
	createBooking "github.com/TheMidnightCodeGuild/turfujn/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgUserNotFound       = "профиль пользователя не найден"
	msgTurfNotFound       = "площадка не найдена"
	msgEmptySlots         = "не выбран ни один слот"
	msgUnknownSlot        = "неизвестный слот"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgSlotInPast         = "слот уже начался, бронирование невозможно"
	msgSlotAlreadyTaken   = "один или несколько слотов уже заняты"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse booking date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotAlreadyTaken):
			h.logger.Warn("POST /bookings - Slot already taken: user_id=%s, turf_id=%s", userID, req.TurfID)
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyTaken)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrTurfNotFound):
			h.logger.Warn("POST /bookings - Turf not found: turf_id=%s", req.TurfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, createBooking.ErrEmptySlotSelection):
			h.logger.Warn("POST /bookings - Empty slot selection: user_id=%s, turf_id=%s", userID, req.TurfID)
			handlers.RespondBadRequest(w, msgEmptySlots)

		case errors.Is(err, createBooking.ErrUnknownSlot):
			h.logger.Warn("POST /bookings - Unknown slot: user_id=%s, turf_id=%s, slots=%v",
				userID, req.TurfID, req.Slots)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%s, date=%s", userID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrSlotInPast):
			h.logger.Warn("POST /bookings - Slot already started: user_id=%s, turf_id=%s", userID, req.TurfID)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, turf_id=%s, error=%v",
				userID, req.TurfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, turf_id=%s, index_updated=%t",
		result.ID, userID, req.TurfID, result.IndexUpdated)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
