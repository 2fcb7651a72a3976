package signalmesh

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalmesh/signalmesh/event"
	"github.com/signalmesh/signalmesh/scheduler"
)

func TestFacade_ValueAndFirst(t *testing.T) {
	r := First(Value("hello"))
	require.True(t, r.IsSuccess())
	assert.Equal(t, "hello", r.Value())
}

func TestFacade_BufferRoundTrip(t *testing.T) {
	p, input := Buffer[int](2)
	input.Put(event.Next(1))
	input.Put(event.Next(2))
	input.Put(event.Next(3))

	var values []int
	p.StartFunc(event.OnNext(func(v int) { values = append(values, v) }))
	assert.Equal(t, []int{2, 3}, values)
}

func TestFacade_TimerTicksOnManualClock(t *testing.T) {
	sched := scheduler.NewManualScheduler(time.Unix(0, 0))

	ticks := 0
	Timer(time.Second, sched, 0).StartFunc(event.OnNext(func(time.Time) { ticks++ }))

	sched.Advance(2 * time.Second)
	assert.Equal(t, 2, ticks)
}
