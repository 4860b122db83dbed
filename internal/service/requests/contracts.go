package requests

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SAC-BookingService/internal/domain"
)

// Gateway интерфейс шлюза персистентности коллекции заявок
type Gateway interface {
	Load(ctx context.Context) ([]*domain.PermissionRequest, error)
	Save(ctx context.Context, reqs []*domain.PermissionRequest) error
}

// IDGenerator генератор идентификаторов заявок
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator генератор идентификаторов на базе UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый уникальный идентификатор
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// ConflictMetrics интерфейс доменных метрик конфликтов слотов
type ConflictMetrics interface {
	IncSlotConflict(operation string)
}

// NopMetrics заглушка метрик для случая, когда метрики выключены
type NopMetrics struct{}

// IncSlotConflict ничего не делает
func (NopMetrics) IncSlotConflict(string) {}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
