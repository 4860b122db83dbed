package get_my_requests

import (
	"net/http"

	"github.com/m04kA/SAC-BookingService/internal/api/handlers"
	"github.com/m04kA/SAC-BookingService/internal/api/middleware"
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

// Handle GET /api/v1/requests/my
// Проекция заявителя: история его заявок, новые первыми.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /requests/my - No actor in context")
		handlers.RespondInternalError(w)
		return
	}

	result := h.service.ListByRequester(actor.Email)

	h.logger.Info("GET /requests/my - Requests retrieved: requester=%s, count=%d",
		actor.Email, len(result.Requests))
	handlers.RespondJSON(w, http.StatusOK, result)
}
