package disposable

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_RunsActionExactlyOnce(t *testing.T) {
	runs := 0
	d := New(func() { runs++ })

	assert.False(t, d.IsDisposed())
	d.Dispose()
	d.Dispose()
	d.Dispose()

	assert.True(t, d.IsDisposed())
	assert.Equal(t, 1, runs)
}

func TestNew_NilActionIsAllowed(t *testing.T) {
	d := New(nil)
	assert.NotPanics(t, d.Dispose)
	assert.True(t, d.IsDisposed())
}

func TestNew_ConcurrentDisposeRunsActionOnce(t *testing.T) {
	var runs atomic.Int32
	d := New(func() { runs.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Dispose()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), runs.Load())
	assert.True(t, d.IsDisposed())
}

func TestDisposed_IsAlreadyDisposed(t *testing.T) {
	d := Disposed()
	assert.True(t, d.IsDisposed())
	assert.NotPanics(t, d.Dispose)
}
