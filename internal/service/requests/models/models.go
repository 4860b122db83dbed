package models

import (
	"time"

	"github.com/m04kA/SAC-BookingService/internal/domain"
)

// Request модели

// CreateRequest запрос на создание заявки
type CreateRequest struct {
	RequesterEmail string
	RequesterName  *string
	Location       domain.Location
	Capacity       *int
	Purpose        string
	Start          time.Time
	End            time.Time
	IsSpecial      bool
	SpecialDetails *string
}

// EditRequest полная замена редактируемых полей заявки.
// Идентификатор, автор, площадка, статус и время создания не изменяются.
type EditRequest struct {
	Purpose  string
	Start    time.Time
	End      time.Time
	Capacity *int
}

// CheckSlotRequest параметры проверки доступности слота
type CheckSlotRequest struct {
	Location domain.Location
	Start    time.Time
	End      time.Time
}

// Response модели

// RequestResponse DTO заявки
type RequestResponse struct {
	ID             string    `json:"id"`
	RequesterEmail string    `json:"requesterEmail"`
	RequesterName  *string   `json:"requesterName,omitempty"`
	Location       string    `json:"location"`
	Capacity       *int      `json:"capacity,omitempty"`
	Purpose        string    `json:"purpose"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	IsSpecial      bool      `json:"isSpecial,omitempty"`
	SpecialDetails *string   `json:"specialDetails,omitempty"`
}

// RequestListResponse ответ со списком заявок
type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
}

// SlotAvailability результат проверки доступности слота.
// SuggestedStart заполняется только для занятого слота и носит
// рекомендательный характер.
type SlotAvailability struct {
	Free           bool       `json:"free"`
	SuggestedStart *time.Time `json:"suggestedStart,omitempty"`
}

// Методы конвертации

// FromDomainRequest конвертирует доменную заявку в DTO
func FromDomainRequest(r *domain.PermissionRequest) *RequestResponse {
	if r == nil {
		return nil
	}
	return &RequestResponse{
		ID:             r.ID,
		RequesterEmail: r.RequesterEmail,
		RequesterName:  r.RequesterName,
		Location:       string(r.Location),
		Capacity:       r.Capacity,
		Purpose:        r.Purpose,
		Start:          r.Start,
		End:            r.End,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
		IsSpecial:      r.IsSpecial,
		SpecialDetails: r.SpecialDetails,
	}
}

// FromDomainRequestList конвертирует список доменных заявок в DTO
func FromDomainRequestList(reqs []*domain.PermissionRequest) *RequestListResponse {
	result := &RequestListResponse{
		Requests: make([]RequestResponse, 0, len(reqs)),
	}
	for _, r := range reqs {
		result.Requests = append(result.Requests, *FromDomainRequest(r))
	}
	return result
}
