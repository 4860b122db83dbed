package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(id string, loc Location, status RequestStatus, start, end time.Time) *PermissionRequest {
	return &PermissionRequest{
		ID:       id,
		Location: loc,
		Status:   status,
		Start:    start,
		End:      end,
	}
}

func TestIsFree(t *testing.T) {
	policy := DefaultOccupancyPolicy()
	existing := []*PermissionRequest{
		booking("r1", LocationLA1, StatusPending, at(10, 0), at(11, 0)),
		booking("r2", LocationDTS, StatusApproved, at(9, 0), at(17, 0)),
	}

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		location  Location
		excludeID string
		want      bool
	}{
		{
			name:  "overlapping window is busy",
			start: at(10, 30), end: at(11, 30),
			location: LocationLA1,
			want:     false,
		},
		{
			name:  "touching window is free",
			start: at(11, 0), end: at(12, 0),
			location: LocationLA1,
			want:     true,
		},
		{
			name:  "other location does not conflict",
			start: at(10, 0), end: at(11, 0),
			location: LocationSTS,
			want:     true,
		},
		{
			name:  "self exclusion skips own booking",
			start: at(10, 0), end: at(11, 0),
			location:  LocationLA1,
			excludeID: "r1",
			want:      true,
		},
		{
			name:  "missing start is never free",
			start: time.Time{}, end: at(11, 0),
			location: LocationLA1,
			want:     false,
		},
		{
			name:  "missing end is never free",
			start: at(10, 0), end: time.Time{},
			location: LocationLA1,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsFree(tt.start, tt.end, tt.location, existing, tt.excludeID, policy)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsFree_RejectedStillOccupies(t *testing.T) {
	existing := []*PermissionRequest{
		booking("r1", LocationLA1, StatusRejected, at(10, 0), at(11, 0)),
	}

	// По умолчанию слот держат все статусы, включая отклонённые
	assert.False(t, IsFree(at(10, 30), at(11, 30), LocationLA1, existing, "", DefaultOccupancyPolicy()))

	// Суженная политика пропускает отклонённые заявки
	narrow := NewOccupancyPolicy(StatusPending, StatusApproved)
	assert.True(t, IsFree(at(10, 30), at(11, 30), LocationLA1, existing, "", narrow))
}

func TestSuggestNextStart(t *testing.T) {
	policy := DefaultOccupancyPolicy()

	t.Run("suggests after latest overlapping end", func(t *testing.T) {
		existing := []*PermissionRequest{
			booking("r1", LocationLA1, StatusPending, at(10, 0), at(11, 0)),
		}

		got := SuggestNextStart(at(10, 30), LocationLA1, existing, policy)
		require.NotNil(t, got)
		assert.Equal(t, at(11, 0), *got)
	})

	t.Run("rounds minutes up to quarter hour", func(t *testing.T) {
		existing := []*PermissionRequest{
			booking("r1", LocationLA1, StatusPending, at(10, 0), at(11, 7)),
		}

		got := SuggestNextStart(at(10, 30), LocationLA1, existing, policy)
		require.NotNil(t, got)
		assert.Equal(t, at(11, 15), *got)
	})

	t.Run("minute 60 rolls into next hour", func(t *testing.T) {
		existing := []*PermissionRequest{
			booking("r1", LocationLA1, StatusPending, at(10, 0), at(11, 50)),
		}

		got := SuggestNextStart(at(10, 30), LocationLA1, existing, policy)
		require.NotNil(t, got)
		assert.Equal(t, at(12, 0), *got)
	})

	t.Run("picks max end among qualifying bookings", func(t *testing.T) {
		existing := []*PermissionRequest{
			booking("r1", LocationLA1, StatusPending, at(10, 0), at(11, 0)),
			booking("r2", LocationLA1, StatusApproved, at(10, 0), at(13, 0)),
			booking("r3", LocationLA1, StatusPending, at(8, 0), at(9, 0)),
		}

		got := SuggestNextStart(at(10, 30), LocationLA1, existing, policy)
		require.NotNil(t, got)
		assert.Equal(t, at(13, 0), *got)
	})

	t.Run("nil when nothing ends after candidate", func(t *testing.T) {
		existing := []*PermissionRequest{
			booking("r1", LocationLA1, StatusPending, at(8, 0), at(9, 0)),
		}

		assert.Nil(t, SuggestNextStart(at(10, 30), LocationLA1, existing, policy))
	})

	t.Run("other locations are ignored", func(t *testing.T) {
		existing := []*PermissionRequest{
			booking("r1", LocationDTS, StatusPending, at(10, 0), at(12, 0)),
		}

		assert.Nil(t, SuggestNextStart(at(10, 30), LocationLA1, existing, policy))
	})

	t.Run("non-occupying statuses are ignored", func(t *testing.T) {
		existing := []*PermissionRequest{
			booking("r1", LocationLA1, StatusRejected, at(10, 0), at(12, 0)),
		}

		narrow := NewOccupancyPolicy(StatusPending, StatusApproved)
		assert.Nil(t, SuggestNextStart(at(10, 30), LocationLA1, existing, narrow))
	})

	t.Run("zero candidate start yields nil", func(t *testing.T) {
		existing := []*PermissionRequest{
			booking("r1", LocationLA1, StatusPending, at(10, 0), at(11, 0)),
		}

		assert.Nil(t, SuggestNextStart(time.Time{}, LocationLA1, existing, policy))
	})
}

func TestParseLocation(t *testing.T) {
	for _, loc := range AllLocations {
		got, err := ParseLocation(string(loc))
		require.NoError(t, err)
		assert.Equal(t, loc, got)
	}

	_, err := ParseLocation("Pool")
	assert.ErrorIs(t, err, ErrUnknownLocation)

	// Регистр имеет значение
	_, err = ParseLocation("la1")
	assert.ErrorIs(t, err, ErrUnknownLocation)
}

func TestIsCapacityBearing(t *testing.T) {
	assert.True(t, LocationLA1.IsCapacityBearing())
	assert.True(t, LocationLA2.IsCapacityBearing())
	assert.False(t, LocationDTS.IsCapacityBearing())
	assert.False(t, LocationSTS.IsCapacityBearing())
	assert.False(t, LocationFootball1.IsCapacityBearing())
	assert.False(t, LocationFootball2.IsCapacityBearing())
}
