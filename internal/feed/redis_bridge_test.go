package feed

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/NITHEESH-14/CrisisSync/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuperviseBridge_RestartsWithBackoff(t *testing.T) {
	clk := clock.NewFake(base)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	done := make(chan struct{})
	go func() {
		defer close(done)
		superviseBridge(ctx, clk, quietLogger(), func(context.Context) error {
			runs.Add(1)
			return errors.New("connection reset")
		})
	}()

	waitingFor := func(n int32) {
		t.Helper()
		require.Eventually(t, func() bool {
			return runs.Load() == n && clk.PendingTimers() == 1
		}, 2*time.Second, 5*time.Millisecond)
	}

	waitingFor(1)
	clk.Advance(bridgeRestartMinDelay)
	waitingFor(2)

	// Вторая задержка вдвое длиннее
	clk.Advance(bridgeRestartMinDelay)
	assert.Equal(t, int32(2), runs.Load())
	clk.Advance(bridgeRestartMinDelay)
	waitingFor(3)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not stop after cancel")
	}
	assert.Equal(t, int32(3), runs.Load())
}

func TestSuperviseBridge_DelayIsCapped(t *testing.T) {
	clk := clock.NewFake(base)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	go superviseBridge(ctx, clk, quietLogger(), func(context.Context) error {
		runs.Add(1)
		return errors.New("connection refused")
	})

	for n := int32(1); n <= 8; n++ {
		require.Eventually(t, func() bool {
			return runs.Load() == n && clk.PendingTimers() == 1
		}, 2*time.Second, 5*time.Millisecond)
		clk.Advance(bridgeRestartMaxDelay)
	}
	require.Eventually(t, func() bool { return runs.Load() == 9 }, 2*time.Second, 5*time.Millisecond)
}

func TestSuperviseBridge_StopsWhenContextCancelled(t *testing.T) {
	clk := clock.NewFake(base)
	ctx, cancel := context.WithCancel(context.Background())

	var runs atomic.Int32
	done := make(chan struct{})
	go func() {
		defer close(done)
		superviseBridge(ctx, clk, quietLogger(), func(ctx context.Context) error {
			runs.Add(1)
			<-ctx.Done()
			return ctx.Err()
		})
	}()

	require.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not stop after cancel")
	}
	assert.Zero(t, clk.PendingTimers())
	assert.Equal(t, int32(1), runs.Load())
}

func TestHub_MarkAllLagged(t *testing.T) {
	hub := NewHub(quietLogger(), 1, nil)
	_, first := hub.attach()
	_, second := hub.attach()

	hub.markAllLagged()

	assert.True(t, first.lagged.Load())
	assert.True(t, second.lagged.Load())
}
