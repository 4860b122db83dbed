package reject_request

import (
	"net/http"

	"github.com/gorilla/mux"

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

// Handle POST /api/v1/requests/{requestId}/reject
// Неизвестный id — no-op.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["requestId"]

	h.service.Reject(r.Context(), requestID)

	h.logger.Info("POST /requests/{requestId}/reject - Reject processed: id=%s", requestID)
	handlers.RespondNoContent(w)
}
