package signal

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalmesh/signalmesh/disposable"
	"github.com/signalmesh/signalmesh/event"
)

func TestFirst_Success(t *testing.T) {
	r := First(Value(5))
	require.True(t, r.IsSuccess())
	assert.Equal(t, 5, r.Value())
}

func TestFirst_DisposesRunAfterFirstValue(t *testing.T) {
	emitted := 0
	p := NewProducer(func(o event.Observer[int], run *disposable.Composite) {
		for i := 1; i <= 5; i++ {
			if run.IsDisposed() {
				return
			}
			emitted++
			o.Put(event.Next(i))
		}
	})

	r := First(p)
	require.True(t, r.IsSuccess())
	assert.Equal(t, 1, r.Value())
	assert.Equal(t, 1, emitted)
}

func TestFirst_EmptyYieldsDistinguishedFailure(t *testing.T) {
	r := First(Empty[int]())
	require.False(t, r.IsSuccess())
	assert.ErrorIs(t, r.Err(), ErrExpectedSingleValue)
}

func TestFirst_FailureYieldsError(t *testing.T) {
	boom := errors.New("boom")
	r := First(Failed[int](boom))
	require.False(t, r.IsSuccess())
	assert.ErrorIs(t, r.Err(), boom)
}

func TestFirst_BlocksUntilAsynchronousValue(t *testing.T) {
	p := NewProducer(func(o event.Observer[int], run *disposable.Composite) {
		go func() {
			time.Sleep(10 * time.Millisecond)
			o.Put(event.Next(42))
		}()
	})

	start := time.Now()
	r := First(p)
	require.True(t, r.IsSuccess())
	assert.Equal(t, 42, r.Value())
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}
