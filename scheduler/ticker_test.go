package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitTicks(t *testing.T, ch <-chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for tick %d of %d", i+1, n)
		}
	}
}

func TestTickerScheduler_RepeatsUntilDisposed(t *testing.T) {
	s := NewTickerScheduler()
	defer s.Close()

	ticks := make(chan struct{}, 64)
	handle := s.Schedule(time.Millisecond, time.Millisecond, 0, func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})
	require.Equal(t, 1, s.Len())

	waitTicks(t, ticks, 3)
	handle.Dispose()
	assert.True(t, handle.IsDisposed())
	assert.Equal(t, 0, s.Len())

	// Drain anything in flight, then verify the stream of ticks dries up.
	time.Sleep(20 * time.Millisecond)
	for {
		select {
		case <-ticks:
			continue
		default:
		}
		break
	}
	select {
	case <-ticks:
		t.Fatal("tick delivered after dispose")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestTickerScheduler_DelayHonored(t *testing.T) {
	s := NewTickerScheduler()
	defer s.Close()

	var fired atomic.Bool
	handle := s.Schedule(time.Hour, time.Hour, 0, func() { fired.Store(true) })
	defer handle.Dispose()

	time.Sleep(10 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestTickerScheduler_CloseCancelsAllTasks(t *testing.T) {
	s := NewTickerScheduler()

	for i := 0; i < 3; i++ {
		s.Schedule(time.Hour, time.Hour, 0, func() {})
	}
	require.Equal(t, 3, s.Len())

	s.Close()
	assert.Equal(t, 0, s.Len())

	// New work after Close is rejected with an already disposed handle.
	handle := s.Schedule(time.Millisecond, time.Millisecond, 0, func() {})
	assert.True(t, handle.IsDisposed())

	assert.NotPanics(t, s.Close)
}

func TestTickerScheduler_NegativeDurationsPanic(t *testing.T) {
	s := NewTickerScheduler()
	defer s.Close()

	assert.Panics(t, func() { s.Schedule(-1, time.Second, 0, func() {}) })
	assert.Panics(t, func() { s.Schedule(0, -time.Second, 0, func() {}) })
	assert.Panics(t, func() { s.Schedule(0, time.Second, -1, func() {}) })
}

func TestTickerScheduler_Now(t *testing.T) {
	s := NewTickerScheduler()
	defer s.Close()

	before := time.Now()
	now := s.Now()
	assert.False(t, now.Before(before))
}
