package edit_request

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/m04kA/SAC-BookingService/internal/api/handlers"
	requestsService "github.com/m04kA/SAC-BookingService/internal/service/requests"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimestamp   = "некорректная временная метка, ожидается RFC 3339"
	msgRequestNotFound    = "заявка не найдена"
	msgEmptyPurpose       = "цель бронирования обязательна"
	msgMissingWindow      = "начало и конец бронирования обязательны"
	msgInvertedWindow     = "конец бронирования должен быть позже начала"
	msgSlotConflict       = "новое окно конфликтует с существующей заявкой"
)

type Handler struct {
	service  RequestService
	validate *validator.Validate
	logger   Logger
}

func NewHandler(service RequestService, logger Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// Handle PUT /api/v1/requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["requestId"]

	var body EditRequestBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PUT /requests/{requestId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validate.Struct(&body); err != nil {
		h.logger.Warn("PUT /requests/{requestId} - Body validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := body.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /requests/{requestId} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	result, err := h.service.Edit(r.Context(), requestID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, requestsService.ErrRequestNotFound):
			h.logger.Warn("PUT /requests/{requestId} - Request not found: id=%s", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, requestsService.ErrEmptyPurpose):
			handlers.RespondBadRequest(w, msgEmptyPurpose)

		case errors.Is(err, requestsService.ErrMissingWindow):
			handlers.RespondBadRequest(w, msgMissingWindow)

		case errors.Is(err, requestsService.ErrInvertedWindow):
			handlers.RespondBadRequest(w, msgInvertedWindow)

		case errors.Is(err, requestsService.ErrSlotConflict):
			h.logger.Warn("PUT /requests/{requestId} - Slot conflict: id=%s", requestID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		default:
			h.logger.Error("PUT /requests/{requestId} - Failed to edit request: id=%s, error=%v",
				requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /requests/{requestId} - Request edited successfully: id=%s", requestID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
