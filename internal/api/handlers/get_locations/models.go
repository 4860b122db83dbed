package get_locations

import (
	"github.com/m04kA/SAC-BookingService/internal/domain"
	"github.com/m04kA/SAC-BookingService/pkg/ptr"
)

// LocationResponse описание площадки для формы бронирования
type LocationResponse struct {
	Code            string `json:"code"`
	Name            string `json:"name"`
	CapacityBearing bool   `json:"capacityBearing"`
	DefaultCapacity *int   `json:"defaultCapacity,omitempty"`
}

// LocationListResponse ответ со списком площадок
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// FromDomainLocations собирает каталог площадок
func FromDomainLocations(locations []domain.Location) *LocationListResponse {
	result := &LocationListResponse{
		Locations: make([]LocationResponse, 0, len(locations)),
	}
	for _, loc := range locations {
		item := LocationResponse{
			Code:            string(loc),
			Name:            loc.DisplayName(),
			CapacityBearing: loc.IsCapacityBearing(),
		}
		if loc.IsCapacityBearing() {
			item.DefaultCapacity = ptr.Ptr(domain.DefaultIntendedCapacity)
		}
		result.Locations = append(result.Locations, item)
	}
	return result
}
