package event

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallbackObserver_Dispatch(t *testing.T) {
	var values []int
	var errs []error
	completed := 0

	o := NewObserver(
		OnNext(func(v int) { values = append(values, v) }),
		OnFailed[int](func(err error) { errs = append(errs, err) }),
		OnCompleted[int](func() { completed++ }),
	)

	o.Put(Next(1))
	o.Put(Next(2))
	o.Put(Completed[int]())

	assert.Equal(t, []int{1, 2}, values)
	assert.Empty(t, errs)
	assert.Equal(t, 1, completed)

	boom := errors.New("boom")
	o.Put(Failed[int](boom))
	assert.Equal(t, []error{boom}, errs)
}

func TestCallbackObserver_RawFiresBeforeKindDispatch(t *testing.T) {
	var order []string
	o := NewObserver(
		OnEvent(func(e Event[string]) { order = append(order, "raw:"+e.Kind().String()) }),
		OnNext(func(string) { order = append(order, "next") }),
		OnCompleted[string](func() { order = append(order, "completed") }),
	)

	o.Put(Next("a"))
	o.Put(Completed[string]())

	assert.Equal(t, []string{"raw:next", "next", "raw:completed", "completed"}, order)
}

func TestCallbackObserver_UnsetCallbacksAreNoOps(t *testing.T) {
	o := NewObserver[int]()
	assert.NotPanics(t, func() {
		o.Put(Next(1))
		o.Put(Failed[int](errors.New("boom")))
		o.Put(Completed[int]())
	})
}

func TestFunc_BridgesPlainFunctions(t *testing.T) {
	var seen []Event[int]
	var sink Observer[int] = Func[int](func(e Event[int]) { seen = append(seen, e) })

	sink.Put(Next(5))
	sink.Put(Completed[int]())

	assert.Len(t, seen, 2)
	assert.Equal(t, KindNext, seen[0].Kind())
	assert.Equal(t, KindCompleted, seen[1].Kind())
}
