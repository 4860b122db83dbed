package domain

import "time"

// RequestStatus статус заявки на бронирование
type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

// Valid сообщает, является ли значение допустимым статусом
func (s RequestStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// PermissionRequest заявка на бронирование площадки кампуса
type PermissionRequest struct {
	ID             string
	RequesterEmail string
	RequesterName  *string
	Location       Location
	Capacity       *int // Имеет смысл только для аудиторий (LA1/LA2)
	Purpose        string
	Start          time.Time
	End            time.Time
	Status         RequestStatus
	CreatedAt      time.Time

	// Специальная заявка: флаг и свободный текст, задаются только при создании
	IsSpecial      bool
	SpecialDetails *string
}

// HasWindow сообщает, заданы ли обе границы временного окна
func (r *PermissionRequest) HasWindow() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// WindowValid проверяет инвариант start < end (строго)
func (r *PermissionRequest) WindowValid() bool {
	return r.HasWindow() && r.Start.Before(r.End)
}

// IsDecided сообщает, вынесено ли по заявке решение ревьюера
func (r *PermissionRequest) IsDecided() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}

// Clone возвращает независимую копию заявки
func (r *PermissionRequest) Clone() *PermissionRequest {
	if r == nil {
		return nil
	}
	clone := *r
	if r.RequesterName != nil {
		name := *r.RequesterName
		clone.RequesterName = &name
	}
	if r.Capacity != nil {
		capacity := *r.Capacity
		clone.Capacity = &capacity
	}
	if r.SpecialDetails != nil {
		details := *r.SpecialDetails
		clone.SpecialDetails = &details
	}
	return &clone
}
