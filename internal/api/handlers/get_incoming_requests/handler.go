package get_incoming_requests

import (
	"net/http"

	"github.com/m04kA/SAC-BookingService/internal/api/handlers"
)

type Handler struct {
	service RequestService
	logger  Logger
}

func NewHandler(service RequestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/requests
// Проекция ревьюера: вся коллекция заявок без фильтрации.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.ListAll()

	h.logger.Info("GET /requests - Incoming requests retrieved: count=%d", len(result.Requests))
	handlers.RespondJSON(w, http.StatusOK, result)
}
