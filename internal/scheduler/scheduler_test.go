package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEveryRejectsBadInput(t *testing.T) {
	svc, err := New(zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Stop() })

	_, err = svc.Every(" ", time.Minute, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrEmptyJobName)

	_, err = svc.Every("warm", 0, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrBadInterval)
}

func TestEveryRunsOnStart(t *testing.T) {
	svc, err := New(nil)
	require.NoError(t, err)

	ran := make(chan struct{}, 1)
	_, err = svc.Every("warm", time.Hour, func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})
	require.NoError(t, err)

	svc.Start()
	t.Cleanup(func() { _ = svc.Stop() })

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("job did not run on start")
	}
}
