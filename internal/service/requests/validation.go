package requests

import (
	"strings"
	"time"

	"github.com/m04kA/SAC-BookingService/internal/domain"
	"github.com/m04kA/SAC-BookingService/pkg/ptr"
)

// validateFields проверяет общие правила создания и редактирования заявки.
// Возвращается первое нарушенное правило; порядок фиксирован:
// цель, наличие окна, инвариант start < end.
func validateFields(purpose string, start, end time.Time) error {
	if strings.TrimSpace(purpose) == "" {
		return ErrEmptyPurpose
	}
	if start.IsZero() || end.IsZero() {
		return ErrMissingWindow
	}
	if !start.Before(end) {
		return ErrInvertedWindow
	}
	return nil
}

// normalizeCapacity приводит вместимость к правилам площадки:
// для аудиторий отсутствующее значение заменяется дефолтным,
// для остальных площадок вместимость не имеет смысла и сбрасывается.
func normalizeCapacity(location domain.Location, capacity *int) *int {
	if !location.IsCapacityBearing() {
		return nil
	}
	if capacity == nil {
		return ptr.Ptr(domain.DefaultIntendedCapacity)
	}
	return capacity
}
