package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/arena-manager/internal/audit"
	"github.com/BruksfildServices01/arena-manager/internal/backend"
	"github.com/BruksfildServices01/arena-manager/internal/cache"
	"github.com/BruksfildServices01/arena-manager/internal/models"
	"github.com/BruksfildServices01/arena-manager/internal/testutil"
	"github.com/BruksfildServices01/arena-manager/internal/usecase"
)

type fixture struct {
	repo      *testutil.FakeRepository
	coord     *cache.Coordinator
	broadcast *testutil.BroadcastRecorder
	trail     *testutil.AuditRecorder
	audit     *audit.Dispatcher
	viewer    usecase.Viewer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:      testutil.NewFakeRepository(),
		coord:     cache.NewCoordinator(cache.NewMemoryStore(), time.Minute, nil),
		broadcast: &testutil.BroadcastRecorder{},
		trail:     &testutil.AuditRecorder{},
		viewer: usecase.Viewer{
			Token:     "tok",
			Key:       cache.ViewerKey("tok"),
			RequestID: "req-1",
			User:      &models.User{ID: 3, Username: "ana", Role: models.RoleClient},
		},
	}
	f.coord.SetBroadcaster(f.broadcast)
	f.audit = audit.NewDispatcher(f.trail, nil)
	return f
}

func (f *fixture) flushAudit(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, f.audit.Close(ctx))
}

func (f *fixture) seedCache(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	store := f.coord.Store()
	require.NoError(t, store.Set(ctx, cache.ReservationsKey(f.viewer.Key), []byte(`[]`), 0))
	require.NoError(t, store.Set(ctx, cache.SchedulesKey(5), []byte(`[]`), 0))
	require.NoError(t, store.Set(ctx, cache.KeyArenas, []byte(`[]`), 0))
}

func (f *fixture) cached(key string) bool {
	_, err := f.coord.Store().Get(context.Background(), key)
	return err == nil
}

func TestCreateReservationInvalidatesAndAudits(t *testing.T) {
	f := newFixture(t)
	f.seedCache(t)

	res, err := NewCreateReservation(f.repo, f.coord, f.audit).Execute(context.Background(), f.viewer, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), res.ScheduleID)

	assert.False(t, f.cached(cache.ReservationsKey(f.viewer.Key)))
	assert.False(t, f.cached(cache.SchedulesKey(5)))
	assert.True(t, f.cached(cache.KeyArenas))

	require.Len(t, f.broadcast.Sent(), 1)

	f.flushAudit(t)
	events := f.trail.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "reservation_created", events[0].Action)
	assert.Equal(t, "req-1", events[0].RequestID)
	assert.Equal(t, "ana", events[0].ActorUsername)
	assert.Equal(t, uint(3), *events[0].ActorID)
}

func TestCreateReservationFailureLeavesStateUnchanged(t *testing.T) {
	f := newFixture(t)
	f.seedCache(t)
	f.repo.Errs["CreateReservation"] = &backend.Error{
		Op: "create_reservation", Kind: backend.KindValidation, Status: 400, Message: "Horário já reservado",
	}

	_, err := NewCreateReservation(f.repo, f.coord, f.audit).Execute(context.Background(), f.viewer, 1)
	require.Error(t, err)

	var be *backend.Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Horário já reservado", be.Message)

	assert.True(t, f.cached(cache.ReservationsKey(f.viewer.Key)))
	assert.True(t, f.cached(cache.SchedulesKey(5)))
	assert.Empty(t, f.broadcast.Sent())

	f.flushAudit(t)
	assert.Empty(t, f.trail.Events())
	assert.Equal(t, 1, f.repo.CallCount("CreateReservation"))
}

func TestDeleteReservation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := NewCreateReservation(f.repo, f.coord, f.audit).Execute(ctx, f.viewer, 1)
	require.NoError(t, err)
	f.seedCache(t)

	require.NoError(t, NewDeleteReservation(f.repo, f.coord, f.audit).Execute(ctx, f.viewer, res.ID))
	assert.False(t, f.cached(cache.ReservationsKey(f.viewer.Key)))
	assert.Empty(t, f.repo.Reservations["tok"])

	f.flushAudit(t)
	assert.Equal(t, []string{"reservation_created", "reservation_deleted"}, f.trail.Actions())
}

func TestDeleteUnknownReservation(t *testing.T) {
	f := newFixture(t)

	err := NewDeleteReservation(f.repo, f.coord, f.audit).Execute(context.Background(), f.viewer, 404)
	assert.True(t, backend.IsKind(err, backend.KindNotFound))
}

func TestListMineOrdersBySchedule(t *testing.T) {
	f := newFixture(t)
	f.repo.Reservations["tok"] = []models.Reservation{
		{ID: 1},
		{ID: 2, Schedule: &models.ReservationSchedule{Date: "2025-11-11", StartTime: "08:00"}},
		{ID: 3, Schedule: &models.ReservationSchedule{Date: "2025-11-10", StartTime: "20:00"}},
		{ID: 4, Schedule: &models.ReservationSchedule{Date: "2025-11-10", StartTime: "07:00"}},
	}

	out, err := NewListMyReservations(f.repo).Execute(context.Background(), f.viewer)
	require.NoError(t, err)

	ids := make([]uint, 0, len(out))
	for _, r := range out {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []uint{4, 3, 2, 1}, ids)
}
