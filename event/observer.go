package event

// Observer is the sink capability of a stream: it accepts one Event at a
// time. Implementations are not required to be safe for concurrent Put
// calls; the owning component serializes delivery.
type Observer[T any] interface {
	// Put delivers a single event to the sink.
	Put(Event[T])
}

// Func adapts a plain function to the Observer interface. Useful for
// bridging non-native sinks into a stream.
type Func[T any] func(Event[T])

// Put delivers the event by calling the function.
func (f Func[T]) Put(e Event[T]) { f(e) }

// CallbackObserver dispatches each delivered event to per-kind callbacks.
// Unset callbacks are no-ops. An optional raw callback fires for every
// event before the kind-specific dispatch.
type CallbackObserver[T any] struct {
	raw       func(Event[T])
	next      func(T)
	failed    func(error)
	completed func()
}

// CallbackOption configures a CallbackObserver.
type CallbackOption[T any] func(*CallbackObserver[T])

// OnEvent sets a callback invoked for every event, before kind dispatch.
func OnEvent[T any](fn func(Event[T])) CallbackOption[T] {
	return func(o *CallbackObserver[T]) { o.raw = fn }
}

// OnNext sets the callback for value events.
func OnNext[T any](fn func(T)) CallbackOption[T] {
	return func(o *CallbackObserver[T]) { o.next = fn }
}

// OnFailed sets the callback for failure events.
func OnFailed[T any](fn func(error)) CallbackOption[T] {
	return func(o *CallbackObserver[T]) { o.failed = fn }
}

// OnCompleted sets the callback for the completion event.
func OnCompleted[T any](fn func()) CallbackOption[T] {
	return func(o *CallbackObserver[T]) { o.completed = fn }
}

// NewObserver builds an observer from per-kind callbacks. Any callback may
// be omitted.
func NewObserver[T any](opts ...CallbackOption[T]) *CallbackObserver[T] {
	o := &CallbackObserver[T]{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Put routes the event to the raw callback, then to the matching
// kind-specific callback.
func (o *CallbackObserver[T]) Put(e Event[T]) {
	if o.raw != nil {
		o.raw(e)
	}
	switch e.Kind() {
	case KindNext:
		if o.next != nil {
			o.next(e.Value())
		}
	case KindFailed:
		if o.failed != nil {
			o.failed(e.Err())
		}
	case KindCompleted:
		if o.completed != nil {
			o.completed()
		}
	}
}
