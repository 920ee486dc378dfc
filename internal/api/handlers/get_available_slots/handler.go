package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/TheMidnightCodeGuild/turfujn/internal/api/handlers"
	getAvailableSlots "github.com/TheMidnightCodeGuild/turfujn/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDate  = "отсутствует обязательный параметр date"
	msgTurfNotFound = "площадка не найдена"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/turfs/{turfId}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	turfID := vars["turfId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /turfs/{turfId}/slots - Missing date parameter: turf_id=%s", turfID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(turfID, dateStr)
	if err != nil {
		h.logger.Warn("GET /turfs/{turfId}/slots - Invalid date: turf_id=%s, date=%s", turfID, dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTurfNotFound):
			h.logger.Warn("GET /turfs/{turfId}/slots - Turf not found: turf_id=%s", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /turfs/{turfId}/slots - Invalid input: turf_id=%s, error=%v", turfID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /turfs/{turfId}/slots - Failed to get slots: turf_id=%s, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /turfs/{turfId}/slots - Slots returned: turf_id=%s, date=%s, count=%d",
		turfID, response.Date, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
