package list_time_slots

import (
	"net/http"

	"github.com/TheMidnightCodeGuild/turfujn/internal/api/handlers"
	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
)

type Handler struct {
	catalog *domain.SlotCatalog
	logger  Logger
}

func NewHandler(catalog *domain.SlotCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Каталог статичен, один и тот же для всех площадок
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := FromCatalog(h.catalog)

	h.logger.Info("GET /slots - Catalog returned: count=%d", len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
