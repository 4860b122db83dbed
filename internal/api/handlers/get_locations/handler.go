package get_locations

import (
	"net/http"

	"github.com/m04kA/SAC-BookingService/internal/api/handlers"
	"github.com/m04kA/SAC-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/locations
// Каталог площадок статичен: закрытый список из шести площадок.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := FromDomainLocations(domain.AllLocations)

	h.logger.Info("GET /locations - Catalog retrieved: count=%d", len(result.Locations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
