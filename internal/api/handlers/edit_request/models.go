package edit_request

import (
	"fmt"
	"time"

	"github.com/m04kA/SAC-BookingService/internal/service/requests/models"
)

// EditRequestBody HTTP модель запроса на редактирование заявки.
// Форма редактирования заменяет цель, окно и вместимость; остальные поля
// заявки неизменяемы.
type EditRequestBody struct {
	Purpose  string `json:"purpose" validate:"required,max=500"`
	Start    string `json:"start" validate:"required"`
	End      string `json:"end" validate:"required"`
	Capacity *int   `json:"capacity,omitempty" validate:"omitempty,min=1"`
}

// ToServiceRequest парсит HTTP модель и конвертирует её в модель сервиса
func (b *EditRequestBody) ToServiceRequest() (*models.EditRequest, error) {
	start, err := time.Parse(time.RFC3339, b.Start)
	if err != nil {
		return nil, fmt.Errorf("parse start: %w", err)
	}

	end, err := time.Parse(time.RFC3339, b.End)
	if err != nil {
		return nil, fmt.Errorf("parse end: %w", err)
	}

	return &models.EditRequest{
		Purpose:  b.Purpose,
		Start:    start,
		End:      end,
		Capacity: b.Capacity,
	}, nil
}
