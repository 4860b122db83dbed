package domain

import "errors"

// ErrUnknownLocation возвращается при неизвестном идентификаторе площадки
var ErrUnknownLocation = errors.New("domain: unknown location")

// Location идентификатор площадки кампуса
type Location string

const (
	LocationLA1       Location = "LA1"
	LocationLA2       Location = "LA2"
	LocationDTS       Location = "DTS"
	LocationSTS       Location = "STS"
	LocationFootball1 Location = "Football1"
	LocationFootball2 Location = "Football2"
)

// AllLocations закрытый список площадок, доступных для бронирования
var AllLocations = []Location{
	LocationLA1,
	LocationLA2,
	LocationDTS,
	LocationSTS,
	LocationFootball1,
	LocationFootball2,
}

// ParseLocation валидирует строковый идентификатор площадки
func ParseLocation(s string) (Location, error) {
	for _, loc := range AllLocations {
		if Location(s) == loc {
			return loc, nil
		}
	}
	return "", ErrUnknownLocation
}

// IsCapacityBearing сообщает, имеет ли площадка смысловую вместимость.
// Вместимость указывается только для лекционных аудиторий.
func (l Location) IsCapacityBearing() bool {
	return l == LocationLA1 || l == LocationLA2
}

// DisplayName человекочитаемое название площадки
func (l Location) DisplayName() string {
	switch l {
	case LocationLA1:
		return "Lecture Auditorium 1"
	case LocationLA2:
		return "Lecture Auditorium 2"
	case LocationDTS:
		return "DTS"
	case LocationSTS:
		return "STS"
	case LocationFootball1:
		return "Football Ground 1"
	case LocationFootball2:
		return "Football Ground 2"
	default:
		return string(l)
	}
}
