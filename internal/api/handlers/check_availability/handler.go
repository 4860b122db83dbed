package check_availability

import (
	"net/http"
	"time"

	"github.com/m04kA/SAC-BookingService/internal/api/handlers"
	"github.com/m04kA/SAC-BookingService/internal/domain"
	"github.com/m04kA/SAC-BookingService/internal/service/requests/models"
)

const msgUnknownLocation = "неизвестная площадка"

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

// Handle GET /api/v1/availability?location=LA1&start=...&end=...
// Живая проверка для формы: занятый слот сопровождается рекомендательной
// подсказкой следующего свободного начала. Отсутствующая или нечитаемая
// граница окна по контракту проверки означает "не свободно", а не ошибку.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	location, err := domain.ParseLocation(query.Get("location"))
	if err != nil {
		h.logger.Warn("GET /availability - Unknown location: %q", query.Get("location"))
		handlers.RespondBadRequest(w, msgUnknownLocation)
		return
	}

	// Нечитаемая метка оставляет нулевое время, что дает free=false
	start, _ := time.Parse(time.RFC3339, query.Get("start"))
	end, _ := time.Parse(time.RFC3339, query.Get("end"))

	result := h.service.CheckSlot(&models.CheckSlotRequest{
		Location: location,
		Start:    start,
		End:      end,
	})

	h.logger.Info("GET /availability - Checked: location=%s, free=%t", location, result.Free)
	handlers.RespondJSON(w, http.StatusOK, result)
}
