package requests

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SAC-BookingService/internal/domain"
	"github.com/m04kA/SAC-BookingService/internal/service/requests/models"
	"github.com/m04kA/SAC-BookingService/pkg/ptr"
)

type fakeGateway struct {
	loadFunc func(ctx context.Context) ([]*domain.PermissionRequest, error)
	saveFunc func(ctx context.Context, reqs []*domain.PermissionRequest) error

	saved [][]*domain.PermissionRequest
}

func (g *fakeGateway) Load(ctx context.Context) ([]*domain.PermissionRequest, error) {
	if g.loadFunc != nil {
		return g.loadFunc(ctx)
	}
	return []*domain.PermissionRequest{}, nil
}

func (g *fakeGateway) Save(ctx context.Context, reqs []*domain.PermissionRequest) error {
	g.saved = append(g.saved, reqs)
	if g.saveFunc != nil {
		return g.saveFunc(ctx, reqs)
	}
	return nil
}

type seqIDGenerator struct {
	n int
}

func (g *seqIDGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 10, hour, minute, 0, 0, time.UTC)
}

func newTestService(t *testing.T, gw *fakeGateway) *Service {
	t.Helper()

	s := NewService(context.Background(), gw, domain.DefaultOccupancyPolicy(), NopMetrics{}, nopLogger{})
	s.ids = &seqIDGenerator{}
	s.timeProvider = &fixedTimeProvider{now: at(8, 0)}
	return s
}

func createReq(loc domain.Location, purpose string, start, end time.Time) *models.CreateRequest {
	return &models.CreateRequest{
		RequesterEmail: "student@campus.edu",
		Location:       loc,
		Purpose:        purpose,
		Start:          start,
		End:            end,
	}
}

func TestCreate(t *testing.T) {
	t.Run("creates pending request with generated id", func(t *testing.T) {
		gw := &fakeGateway{}
		s := newTestService(t, gw)

		got, err := s.Create(context.Background(), createReq(domain.LocationDTS, "rehearsal", at(10, 0), at(11, 0)))
		require.NoError(t, err)

		assert.Equal(t, "id-1", got.ID)
		assert.Equal(t, string(domain.StatusPending), got.Status)
		assert.Equal(t, at(8, 0), got.CreatedAt)
		assert.Nil(t, got.Capacity)
		require.Len(t, gw.saved, 1)
	})

	t.Run("newest request goes first", func(t *testing.T) {
		gw := &fakeGateway{}
		s := newTestService(t, gw)

		_, err := s.Create(context.Background(), createReq(domain.LocationDTS, "first", at(10, 0), at(11, 0)))
		require.NoError(t, err)
		_, err = s.Create(context.Background(), createReq(domain.LocationDTS, "second", at(12, 0), at(13, 0)))
		require.NoError(t, err)

		list := s.ListAll()
		require.Len(t, list.Requests, 2)
		assert.Equal(t, "second", list.Requests[0].Purpose)
		assert.Equal(t, "first", list.Requests[1].Purpose)
	})

	t.Run("validation order: purpose before window", func(t *testing.T) {
		s := newTestService(t, &fakeGateway{})

		_, err := s.Create(context.Background(), createReq(domain.LocationDTS, "   ", time.Time{}, time.Time{}))
		assert.ErrorIs(t, err, ErrEmptyPurpose)

		_, err = s.Create(context.Background(), createReq(domain.LocationDTS, "party", time.Time{}, at(11, 0)))
		assert.ErrorIs(t, err, ErrMissingWindow)

		_, err = s.Create(context.Background(), createReq(domain.LocationDTS, "party", at(11, 0), at(10, 0)))
		assert.ErrorIs(t, err, ErrInvertedWindow)

		_, err = s.Create(context.Background(), createReq(domain.LocationDTS, "party", at(11, 0), at(11, 0)))
		assert.ErrorIs(t, err, ErrInvertedWindow)
	})

	t.Run("overlapping slot is rejected, collection untouched", func(t *testing.T) {
		gw := &fakeGateway{}
		s := newTestService(t, gw)

		_, err := s.Create(context.Background(), createReq(domain.LocationLA1, "lecture", at(10, 0), at(11, 0)))
		require.NoError(t, err)

		_, err = s.Create(context.Background(), createReq(domain.LocationLA1, "seminar", at(10, 30), at(11, 30)))
		assert.ErrorIs(t, err, ErrSlotConflict)

		assert.Len(t, s.ListAll().Requests, 1)
		assert.Len(t, gw.saved, 1)
	})

	t.Run("touching slot on same location is allowed", func(t *testing.T) {
		s := newTestService(t, &fakeGateway{})

		_, err := s.Create(context.Background(), createReq(domain.LocationLA1, "lecture", at(10, 0), at(11, 0)))
		require.NoError(t, err)

		_, err = s.Create(context.Background(), createReq(domain.LocationLA1, "seminar", at(11, 0), at(12, 0)))
		assert.NoError(t, err)
	})

	t.Run("capacity defaults for auditoriums only", func(t *testing.T) {
		s := newTestService(t, &fakeGateway{})

		la, err := s.Create(context.Background(), createReq(domain.LocationLA1, "lecture", at(10, 0), at(11, 0)))
		require.NoError(t, err)
		require.NotNil(t, la.Capacity)
		assert.Equal(t, domain.DefaultIntendedCapacity, *la.Capacity)

		ground := createReq(domain.LocationFootball1, "match", at(10, 0), at(11, 0))
		ground.Capacity = ptr.Ptr(22)
		fb, err := s.Create(context.Background(), ground)
		require.NoError(t, err)
		assert.Nil(t, fb.Capacity)
	})

	t.Run("save failure does not fail the operation", func(t *testing.T) {
		gw := &fakeGateway{
			saveFunc: func(context.Context, []*domain.PermissionRequest) error {
				return errors.New("connection refused")
			},
		}
		s := newTestService(t, gw)

		got, err := s.Create(context.Background(), createReq(domain.LocationDTS, "rehearsal", at(10, 0), at(11, 0)))
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Len(t, s.ListAll().Requests, 1)
	})
}

func TestNewService_LoadFailureStartsEmpty(t *testing.T) {
	gw := &fakeGateway{
		loadFunc: func(context.Context) ([]*domain.PermissionRequest, error) {
			return nil, errors.New("relation does not exist")
		},
	}

	s := NewService(context.Background(), gw, domain.DefaultOccupancyPolicy(), NopMetrics{}, nopLogger{})
	assert.Empty(t, s.ListAll().Requests)
}

func TestCancel(t *testing.T) {
	gw := &fakeGateway{}
	s := newTestService(t, gw)

	created, err := s.Create(context.Background(), createReq(domain.LocationDTS, "rehearsal", at(10, 0), at(11, 0)))
	require.NoError(t, err)

	s.Cancel(context.Background(), created.ID)
	assert.Empty(t, s.ListAll().Requests)
	assert.Len(t, gw.saved, 2)

	// Повторная отмена и отмена несуществующего id — no-op без персистенции
	s.Cancel(context.Background(), created.ID)
	s.Cancel(context.Background(), "missing")
	assert.Len(t, gw.saved, 2)
}

func TestApproveReject(t *testing.T) {
	s := newTestService(t, &fakeGateway{})

	created, err := s.Create(context.Background(), createReq(domain.LocationDTS, "rehearsal", at(10, 0), at(11, 0)))
	require.NoError(t, err)

	s.Approve(context.Background(), created.ID)
	assert.Equal(t, string(domain.StatusApproved), s.ListAll().Requests[0].Status)

	// Повторное одобрение идемпотентно
	s.Approve(context.Background(), created.ID)
	assert.Equal(t, string(domain.StatusApproved), s.ListAll().Requests[0].Status)

	s.Reject(context.Background(), created.ID)
	assert.Equal(t, string(domain.StatusRejected), s.ListAll().Requests[0].Status)

	// Решение по несуществующему id ничего не меняет
	s.Approve(context.Background(), "missing")
	assert.Len(t, s.ListAll().Requests, 1)
}

func TestEdit(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		s := newTestService(t, &fakeGateway{})

		_, err := s.Edit(context.Background(), "missing", &models.EditRequest{
			Purpose: "party",
			Start:   at(10, 0),
			End:     at(11, 0),
		})
		assert.ErrorIs(t, err, ErrRequestNotFound)
	})

	t.Run("unchanged window does not conflict with itself", func(t *testing.T) {
		s := newTestService(t, &fakeGateway{})

		created, err := s.Create(context.Background(), createReq(domain.LocationLA1, "lecture", at(10, 0), at(11, 0)))
		require.NoError(t, err)

		got, err := s.Edit(context.Background(), created.ID, &models.EditRequest{
			Purpose: "updated lecture",
			Start:   at(10, 0),
			End:     at(11, 0),
		})
		require.NoError(t, err)
		assert.Equal(t, "updated lecture", got.Purpose)
	})

	t.Run("conflict with another booking", func(t *testing.T) {
		s := newTestService(t, &fakeGateway{})

		first, err := s.Create(context.Background(), createReq(domain.LocationLA1, "lecture", at(10, 0), at(11, 0)))
		require.NoError(t, err)
		_, err = s.Create(context.Background(), createReq(domain.LocationLA1, "seminar", at(12, 0), at(13, 0)))
		require.NoError(t, err)

		_, err = s.Edit(context.Background(), first.ID, &models.EditRequest{
			Purpose: "lecture",
			Start:   at(12, 30),
			End:     at(13, 30),
		})
		assert.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("status and identity survive the edit", func(t *testing.T) {
		s := newTestService(t, &fakeGateway{})

		created, err := s.Create(context.Background(), createReq(domain.LocationLA1, "lecture", at(10, 0), at(11, 0)))
		require.NoError(t, err)
		s.Approve(context.Background(), created.ID)

		got, err := s.Edit(context.Background(), created.ID, &models.EditRequest{
			Purpose:  "rescheduled lecture",
			Start:    at(14, 0),
			End:      at(15, 0),
			Capacity: ptr.Ptr(30),
		})
		require.NoError(t, err)

		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, created.RequesterEmail, got.RequesterEmail)
		assert.Equal(t, created.CreatedAt, got.CreatedAt)
		assert.Equal(t, string(domain.StatusApproved), got.Status)
		require.NotNil(t, got.Capacity)
		assert.Equal(t, 30, *got.Capacity)
	})
}

func TestProjections(t *testing.T) {
	s := newTestService(t, &fakeGateway{})

	mine := createReq(domain.LocationDTS, "mine", at(10, 0), at(11, 0))
	_, err := s.Create(context.Background(), mine)
	require.NoError(t, err)

	other := createReq(domain.LocationSTS, "other", at(10, 0), at(11, 0))
	other.RequesterEmail = "club-lead@campus.edu"
	_, err = s.Create(context.Background(), other)
	require.NoError(t, err)

	byMe := s.ListByRequester("student@campus.edu")
	require.Len(t, byMe.Requests, 1)
	assert.Equal(t, "mine", byMe.Requests[0].Purpose)

	assert.Empty(t, s.ListByRequester("nobody@campus.edu").Requests)
	assert.Len(t, s.ListAll().Requests, 2)
}

func TestCheckSlot(t *testing.T) {
	s := newTestService(t, &fakeGateway{})

	_, err := s.Create(context.Background(), createReq(domain.LocationLA1, "lecture", at(10, 0), at(11, 0)))
	require.NoError(t, err)

	busy := s.CheckSlot(&models.CheckSlotRequest{
		Location: domain.LocationLA1,
		Start:    at(10, 30),
		End:      at(11, 30),
	})
	assert.False(t, busy.Free)
	require.NotNil(t, busy.SuggestedStart)
	assert.Equal(t, at(11, 0), *busy.SuggestedStart)

	free := s.CheckSlot(&models.CheckSlotRequest{
		Location: domain.LocationLA1,
		Start:    at(12, 0),
		End:      at(13, 0),
	})
	assert.True(t, free.Free)
	assert.Nil(t, free.SuggestedStart)
}
