package requests

import (
	"time"

	"github.com/m04kA/SAC-BookingService/internal/domain"
)

// requestRecord сериализованное представление заявки.
// Ключи стабильны и совместимы с документом, который писала исходная
// версия портала: id, requesterEmail, requesterName, location, capacity,
// purpose, start, end, status, createdAt, isSpecial, specialDetails.
// Временные метки сериализуются как ISO-8601 (RFC 3339).
type requestRecord struct {
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

// toRecord конвертирует доменную заявку в сериализуемую запись
func toRecord(r *domain.PermissionRequest) requestRecord {
	return requestRecord{
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

// toDomain конвертирует запись обратно в доменную заявку
func (rec requestRecord) toDomain() *domain.PermissionRequest {
	return &domain.PermissionRequest{
		ID:             rec.ID,
		RequesterEmail: rec.RequesterEmail,
		RequesterName:  rec.RequesterName,
		Location:       domain.Location(rec.Location),
		Capacity:       rec.Capacity,
		Purpose:        rec.Purpose,
		Start:          rec.Start,
		End:            rec.End,
		Status:         domain.RequestStatus(rec.Status),
		CreatedAt:      rec.CreatedAt,
		IsSpecial:      rec.IsSpecial,
		SpecialDetails: rec.SpecialDetails,
	}
}
