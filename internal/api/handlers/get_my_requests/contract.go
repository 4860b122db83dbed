package get_my_requests

import "github.com/m04kA/SAC-BookingService/internal/service/requests/models"

// RequestService интерфейс сервиса заявок
type RequestService interface {
	ListByRequester(email string) *models.RequestListResponse
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
