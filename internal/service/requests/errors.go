package requests

import "errors"

var (
	// ErrEmptyPurpose возвращается, когда цель бронирования пуста
	ErrEmptyPurpose = errors.New("requests: purpose is required")

	// ErrMissingWindow возвращается, когда не задана граница временного окна
	ErrMissingWindow = errors.New("requests: start and end are required")

	// ErrInvertedWindow возвращается, когда конец окна не позже начала
	ErrInvertedWindow = errors.New("requests: end must be after start")

	// ErrSlotConflict возвращается, когда слот занят пересекающейся заявкой
	ErrSlotConflict = errors.New("requests: slot is not available")

	// ErrRequestNotFound возвращается при редактировании несуществующей заявки
	ErrRequestNotFound = errors.New("requests: request not found")
)
