package cancel_request

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

// Handle DELETE /api/v1/requests/{requestId}
// Отмена идемпотентна: неизвестный id не является ошибкой.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["requestId"]

	h.service.Cancel(r.Context(), requestID)

	h.logger.Info("DELETE /requests/{requestId} - Cancel processed: id=%s", requestID)
	handlers.RespondNoContent(w)
}
