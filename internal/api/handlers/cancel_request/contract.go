package cancel_request

import "context"

// RequestService интерфейс сервиса заявок
type RequestService interface {
	Cancel(ctx context.Context, id string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
