package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingBroadcaster struct {
	mu   sync.Mutex
	sent []Invalidation
}

func (r *recordingBroadcaster) Publish(_ context.Context, inv Invalidation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, inv)
	return nil
}

type item struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestFetchReadThrough(t *testing.T) {
	c := NewCoordinator(NewMemoryStore(), time.Minute, zap.NewNop())
	ctx := context.Background()

	var calls int
	load := func(context.Context) ([]item, error) {
		calls++
		return []item{{ID: 1, Name: "Central"}}, nil
	}

	got, err := Fetch(ctx, c, KeyArenas, load)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: 1, Name: "Central"}}, got)

	got, err = Fetch(ctx, c, KeyArenas, load)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, calls)
}

func TestFetchDoesNotCacheErrors(t *testing.T) {
	c := NewCoordinator(NewMemoryStore(), time.Minute, nil)
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := Fetch(ctx, c, KeyArenas, func(context.Context) ([]item, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	got, err := Fetch(ctx, c, KeyArenas, func(context.Context) ([]item, error) {
		return []item{{ID: 2}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint(2), got[0].ID)
}

func TestFetchCollapsesConcurrentLoads(t *testing.T) {
	c := NewCoordinator(NewMemoryStore(), time.Minute, nil)
	ctx := context.Background()

	var calls int32
	release := make(chan struct{})
	load := func(context.Context) ([]item, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []item{{ID: 1}}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := Fetch(ctx, c, SchedulesKey(5), load)
			assert.NoError(t, err)
		}()
	}

	// dá tempo para todas as goroutines entrarem no singleflight
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestInvalidateAppliesAndBroadcasts(t *testing.T) {
	store := NewMemoryStore()
	c := NewCoordinator(store, time.Minute, nil)
	b := &recordingBroadcaster{}
	c.SetBroadcaster(b)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, ReservationsKey("v1"), []byte(`[]`), 0))
	require.NoError(t, store.Set(ctx, SchedulesKey(1), []byte(`[]`), 0))
	require.NoError(t, store.Set(ctx, KeyArenas, []byte(`[]`), 0))

	inv := Invalidation{
		Keys:     []string{ReservationsKey("v1")},
		Prefixes: []string{PrefixSchedules},
	}
	c.Invalidate(ctx, inv)

	_, err := store.Get(ctx, ReservationsKey("v1"))
	assert.ErrorIs(t, err, ErrMiss)
	_, err = store.Get(ctx, SchedulesKey(1))
	assert.ErrorIs(t, err, ErrMiss)
	_, err = store.Get(ctx, KeyArenas)
	assert.NoError(t, err)

	require.Len(t, b.sent, 1)
	assert.Equal(t, inv, b.sent[0])
}

func TestInvalidateEmptyIsNoop(t *testing.T) {
	c := NewCoordinator(NewMemoryStore(), time.Minute, nil)
	b := &recordingBroadcaster{}
	c.SetBroadcaster(b)

	c.Invalidate(context.Background(), Invalidation{})
	assert.Empty(t, b.sent)
}

func TestInvalidationMerge(t *testing.T) {
	a := Invalidation{Keys: []string{"a"}}
	b := Invalidation{Prefixes: []string{"p:"}}

	m := a.Merge(b)
	assert.Equal(t, []string{"a"}, m.Keys)
	assert.Equal(t, []string{"p:"}, m.Prefixes)
	assert.True(t, Invalidation{}.Empty())
	assert.False(t, m.Empty())
}

func TestFetchInFlightLoadDoesNotSurviveInvalidate(t *testing.T) {
	c := NewCoordinator(NewMemoryStore(), time.Minute, nil)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan []item, 1)
	go func() {
		got, err := Fetch(ctx, c, SchedulesKey(1), func(context.Context) ([]item, error) {
			close(started)
			<-release
			return []item{{ID: 1}}, nil
		})
		assert.NoError(t, err)
		done <- got
	}()

	<-started
	c.Invalidate(ctx, Invalidation{Prefixes: []string{PrefixSchedules}})

	// quem chega depois da invalidação não entra na carga antiga
	fresh, err := Fetch(ctx, c, SchedulesKey(1), func(context.Context) ([]item, error) {
		return []item{}, nil
	})
	require.NoError(t, err)
	assert.Empty(t, fresh)

	close(release)
	assert.Equal(t, []item{{ID: 1}}, <-done)

	_, err = c.Store().Get(ctx, SchedulesKey(1))
	require.NoError(t, err)
	got, err := Fetch(ctx, c, SchedulesKey(1), func(context.Context) ([]item, error) {
		return []item{{ID: 9}}, nil
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFetchSharedLoadOutlivesCanceledCaller(t *testing.T) {
	c := NewCoordinator(NewMemoryStore(), time.Minute, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	var calls int32
	load := func(ctx context.Context) ([]item, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
		}
		select {
		case <-release:
			return []item{{ID: 3}}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := Fetch(first, c, KeyArenas, load)
		firstErr <- err
	}()
	<-started

	second := make(chan []item, 1)
	go func() {
		got, err := Fetch(context.Background(), c, KeyArenas, load)
		assert.NoError(t, err)
		second <- got
	}()

	// dá tempo para a segunda chamada entrar no singleflight
	time.Sleep(50 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	assert.Equal(t, []item{{ID: 3}}, <-second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
