package domain

import "time"

// OccupancyPolicy определяет, какие статусы заявок занимают слот.
// Политика применяется одинаково к проверке конфликта и к подсказке
// следующего свободного начала, чтобы они никогда не расходились.
type OccupancyPolicy struct {
	occupying map[RequestStatus]struct{}
}

// NewOccupancyPolicy создает политику занятости из списка статусов
func NewOccupancyPolicy(statuses ...RequestStatus) OccupancyPolicy {
	occupying := make(map[RequestStatus]struct{}, len(statuses))
	for _, s := range statuses {
		occupying[s] = struct{}{}
	}
	return OccupancyPolicy{occupying: occupying}
}

// DefaultOccupancyPolicy политика по умолчанию: слот держат все статусы,
// включая отклонённые заявки
func DefaultOccupancyPolicy() OccupancyPolicy {
	return NewOccupancyPolicy(OccupyingStatusesDefault...)
}

// Occupies сообщает, занимает ли заявка с данным статусом слот
func (p OccupancyPolicy) Occupies(s RequestStatus) bool {
	_, ok := p.occupying[s]
	return ok
}

// Statuses возвращает список занимающих статусов (для логирования)
func (p OccupancyPolicy) Statuses() []RequestStatus {
	statuses := make([]RequestStatus, 0, len(p.occupying))
	for _, s := range OccupyingStatusesDefault {
		if p.Occupies(s) {
			statuses = append(statuses, s)
		}
	}
	return statuses
}

// IsFree проверяет, свободен ли слот (location, [start, end)) относительно existing.
// excludeID — id заявки, которую нужно пропустить (самоисключение при
// ревалидации редактирования); пустая строка — без исключений.
// Отсутствующая граница окна сразу дает false.
func IsFree(
	start, end time.Time,
	location Location,
	existing []*PermissionRequest,
	excludeID string,
	policy OccupancyPolicy,
) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}

	for _, r := range existing {
		if r.Location != location {
			continue
		}
		if excludeID != "" && r.ID == excludeID {
			continue
		}
		if !policy.Occupies(r.Status) {
			continue
		}
		if Overlaps(start, end, r.Start, r.End) {
			return false
		}
	}

	return true
}

// SuggestNextStart вычисляет подсказку следующего свободного начала для слота
// на площадке location: максимальный конец среди заявок, чей конец строго
// позже candidateStart, округлённый по минутам вверх до кратного 15.
// Возвращает nil, если подходящих заявок нет.
//
// Подсказка носит рекомендательный характер: она не ревалидируется против
// соседних заявок, и вызывающая сторона обязана прогнать её через IsFree
// перед принятием.
func SuggestNextStart(
	candidateStart time.Time,
	location Location,
	existing []*PermissionRequest,
	policy OccupancyPolicy,
) *time.Time {
	if candidateStart.IsZero() {
		return nil
	}

	var latest time.Time
	for _, r := range existing {
		if r.Location != location {
			continue
		}
		if !policy.Occupies(r.Status) {
			continue
		}
		if !r.End.After(candidateStart) {
			continue
		}
		if r.End.After(latest) {
			latest = r.End
		}
	}

	if latest.IsZero() {
		return nil
	}

	suggested := roundUpToQuantum(latest, SuggestionQuantumMinutes)
	return &suggested
}

// roundUpToQuantum округляет минуты момента вверх до ближайшего кратного
// quantum, обнуляя секунды и доли секунды. Минута 60 нормализуется в
// следующий час средствами time.Date.
func roundUpToQuantum(t time.Time, quantum int) time.Time {
	minutes := ((t.Minute() + quantum - 1) / quantum) * quantum
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minutes, 0, 0, t.Location())
}
