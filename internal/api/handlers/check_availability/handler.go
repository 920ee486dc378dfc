package check_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/TheMidnightCodeGuild/turfujn/internal/api/handlers"
	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
	checkAvailability "github.com/TheMidnightCodeGuild/turfujn/internal/usecase/check_availability"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDate  = "отсутствует обязательный параметр date"
	msgTurfNotFound = "площадка не найдена"
	msgInvalidInput = "некорректные параметры запроса"
	msgQueryFailed  = "не удалось проверить доступность, попробуйте позже"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	catalog *domain.SlotCatalog
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, catalog *domain.SlotCatalog, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/turfs/{turfId}/availability?date=YYYY-MM-DD&slots=id1,id2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	turfID := vars["turfId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /turfs/{turfId}/availability - Missing date parameter: turf_id=%s", turfID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(turfID, dateStr, r.URL.Query().Get("slots"), h.catalog)
	if err != nil {
		h.logger.Warn("GET /turfs/{turfId}/availability - Invalid date: turf_id=%s, date=%s", turfID, dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrTurfNotFound):
			h.logger.Warn("GET /turfs/{turfId}/availability - Turf not found: turf_id=%s", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /turfs/{turfId}/availability - Invalid input: turf_id=%s, error=%v", turfID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkAvailability.ErrQueryFailed):
			// Доступность неизвестна, отвечаем 503 чтобы клиент не принял
			// сбой за свободные слоты
			h.logger.Error("GET /turfs/{turfId}/availability - Query failed: turf_id=%s, error=%v", turfID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgQueryFailed)

		default:
			h.logger.Error("GET /turfs/{turfId}/availability - Unexpected error: turf_id=%s, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(turfID, useCaseReq.Date, result)

	h.logger.Info("GET /turfs/{turfId}/availability - Checked: turf_id=%s, date=%s, available=%t",
		turfID, response.Date, response.Available)
	handlers.RespondJSON(w, http.StatusOK, response)
}
