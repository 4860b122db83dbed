package domain

// Default values
const (
	// DefaultIntendedCapacity вместимость по умолчанию для аудиторий (LA1/LA2)
	DefaultIntendedCapacity = 10

	// SuggestionQuantumMinutes шаг округления предлагаемого времени начала
	SuggestionQuantumMinutes = 15
)

// Business validation constants
const (
	MaxPurposeLength        = 500
	MaxSpecialDetailsLength = 500
)

// OccupyingStatusesDefault статусы, занимающие слот, в наблюдаемом поведении
// исходной версии: слот держат все заявки, включая отклонённые
var OccupyingStatusesDefault = []RequestStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
}
