package create_request

import (
	"fmt"
	"time"

	"github.com/m04kA/SAC-BookingService/internal/api/middleware"
	"github.com/m04kA/SAC-BookingService/internal/domain"
	"github.com/m04kA/SAC-BookingService/internal/service/requests/models"
)

// CreateRequestBody HTTP модель запроса на создание заявки.
// Временные метки передаются строками RFC 3339.
type CreateRequestBody struct {
	Location       string  `json:"location" validate:"required"`
	Capacity       *int    `json:"capacity,omitempty" validate:"omitempty,min=1"`
	Purpose        string  `json:"purpose" validate:"required,max=500"`
	Start          string  `json:"start" validate:"required"`
	End            string  `json:"end" validate:"required"`
	IsSpecial      bool    `json:"isSpecial,omitempty"`
	SpecialDetails *string `json:"specialDetails,omitempty" validate:"omitempty,max=500"`
}

// ConflictResponse тело ответа 409 с подсказкой следующего свободного начала
type ConflictResponse struct {
	Error          string     `json:"error"`
	SuggestedStart *time.Time `json:"suggestedStart,omitempty"`
}

// ToServiceRequest парсит HTTP модель и конвертирует её в модель сервиса.
// Личность заявителя берётся из актора запроса, а не из тела.
func (b *CreateRequestBody) ToServiceRequest(actor middleware.Actor) (*models.CreateRequest, error) {
	location, err := domain.ParseLocation(b.Location)
	if err != nil {
		return nil, err
	}

	start, err := time.Parse(time.RFC3339, b.Start)
	if err != nil {
		return nil, fmt.Errorf("parse start: %w", err)
	}

	end, err := time.Parse(time.RFC3339, b.End)
	if err != nil {
		return nil, fmt.Errorf("parse end: %w", err)
	}

	return &models.CreateRequest{
		RequesterEmail: actor.Email,
		RequesterName:  actor.Name,
		Location:       location,
		Capacity:       b.Capacity,
		Purpose:        b.Purpose,
		Start:          start,
		End:            end,
		IsSpecial:      b.IsSpecial,
		SpecialDetails: b.SpecialDetails,
	}, nil
}
