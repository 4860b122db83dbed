package edit_request

import (
	"context"

	"github.com/m04kA/SAC-BookingService/internal/service/requests/models"
)

// RequestService интерфейс сервиса заявок
type RequestService interface {
	Edit(ctx context.Context, id string, req *models.EditRequest) (*models.RequestResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
