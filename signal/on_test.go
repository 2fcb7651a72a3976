package signal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/signalmesh/signalmesh/event"
	"github.com/signalmesh/signalmesh/internal/testutil"
)

func TestOn_CallbackOrderForValueRun(t *testing.T) {
	var order []string

	p := FromSlice([]int{1}).On(
		OnStarted[int](func() { order = append(order, "started") }),
		OnEvent(func(e event.Event[int]) { order = append(order, "event:"+e.Kind().String()) }),
		OnNext[int](func(v int) { order = append(order, "next") }),
		OnCompleted[int](func() { order = append(order, "completed") }),
		OnTerminated[int](func() { order = append(order, "terminated") }),
	)

	rec := testutil.NewRecorder[int]()
	p.StartWithObserver(rec)

	assert.Equal(t, []string{
		"started",
		"event:next", "next",
		"event:completed", "completed", "terminated",
	}, order)

	// Events are forwarded unchanged.
	assert.Equal(t, []int{1}, rec.Values())
	assert.Equal(t, []event.Kind{event.KindNext, event.KindCompleted}, rec.Kinds())
}

func TestOn_FailureRoutesToFailedAndTerminated(t *testing.T) {
	boom := errors.New("boom")
	var failures []error
	terminated := 0

	p := Failed[int](boom).On(
		OnFailed[int](func(err error) { failures = append(failures, err) }),
		OnTerminated[int](func() { terminated++ }),
	)
	p.StartWithObserver(testutil.NewRecorder[int]())

	assert.Equal(t, []error{boom}, failures)
	assert.Equal(t, 1, terminated)
}

func TestOn_DisposedFiresOnCancellation(t *testing.T) {
	disposed := 0
	p := Never[int]().On(OnDisposed[int](func() { disposed++ }))

	d := p.StartWithObserver(testutil.NewRecorder[int]())
	assert.Equal(t, 0, disposed)

	d.Dispose()
	d.Dispose()
	assert.Equal(t, 1, disposed)
}

func TestOn_StartedFiresPerRun(t *testing.T) {
	started := 0
	p := Empty[int]().On(OnStarted[int](func() { started++ }))

	p.StartWithObserver(testutil.NewRecorder[int]())
	p.StartWithObserver(testutil.NewRecorder[int]())

	assert.Equal(t, 2, started)
}
