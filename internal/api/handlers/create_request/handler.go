package create_request

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SAC-BookingService/internal/api/handlers"
	"github.com/m04kA/SAC-BookingService/internal/api/middleware"
	"github.com/m04kA/SAC-BookingService/internal/domain"
	requestsService "github.com/m04kA/SAC-BookingService/internal/service/requests"
	"github.com/m04kA/SAC-BookingService/internal/service/requests/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownLocation    = "неизвестная площадка"
	msgInvalidTimestamp   = "некорректная временная метка, ожидается RFC 3339"
	msgEmptyPurpose       = "цель бронирования обязательна"
	msgMissingWindow      = "начало и конец бронирования обязательны"
	msgInvertedWindow     = "конец бронирования должен быть позже начала"
	msgSlotConflict       = "выбранный слот занят"
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

// Handle POST /api/v1/requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /requests - No actor in context")
		handlers.RespondInternalError(w)
		return
	}

	var body CreateRequestBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validate.Struct(&body); err != nil {
		h.logger.Warn("POST /requests - Body validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := body.ToServiceRequest(actor)
	if err != nil {
		h.logger.Warn("POST /requests - Failed to parse request: %v", err)
		if errors.Is(err, domain.ErrUnknownLocation) {
			handlers.RespondBadRequest(w, msgUnknownLocation)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTimestamp)
		}
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, requestsService.ErrEmptyPurpose):
			handlers.RespondBadRequest(w, msgEmptyPurpose)

		case errors.Is(err, requestsService.ErrMissingWindow):
			handlers.RespondBadRequest(w, msgMissingWindow)

		case errors.Is(err, requestsService.ErrInvertedWindow):
			handlers.RespondBadRequest(w, msgInvertedWindow)

		case errors.Is(err, requestsService.ErrSlotConflict):
			h.logger.Warn("POST /requests - Slot conflict: requester=%s, location=%s",
				actor.Email, serviceReq.Location)
			// Занятый слот сопровождается рекомендательной подсказкой
			availability := h.service.CheckSlot(&models.CheckSlotRequest{
				Location: serviceReq.Location,
				Start:    serviceReq.Start,
				End:      serviceReq.End,
			})
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:          msgSlotConflict,
				SuggestedStart: availability.SuggestedStart,
			})

		default:
			h.logger.Error("POST /requests - Failed to create request: requester=%s, error=%v",
				actor.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /requests - Request created successfully: id=%s, requester=%s",
		result.ID, actor.Email)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
