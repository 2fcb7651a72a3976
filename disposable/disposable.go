package disposable

import "sync/atomic"

// Disposable is a cancellable handle. Dispose is idempotent: N calls have
// the effect of exactly one, and the associated cleanup action runs at most
// once.
type Disposable interface {
	// Dispose cancels the handle. Safe for concurrent use.
	Dispose()

	// IsDisposed reports whether Dispose has been called.
	IsDisposed() bool
}

// actionDisposable runs a cleanup action on the first Dispose.
type actionDisposable struct {
	disposed atomic.Bool
	action   func()
}

// New returns a Disposable that runs action exactly once, on the first call
// to Dispose. A nil action is allowed and yields a plain disposable flag.
func New(action func()) Disposable {
	return &actionDisposable{action: action}
}

// Dispose runs the action if this is the first call.
func (d *actionDisposable) Dispose() {
	if d.disposed.CompareAndSwap(false, true) && d.action != nil {
		d.action()
	}
}

// IsDisposed reports whether the handle has been disposed.
func (d *actionDisposable) IsDisposed() bool { return d.disposed.Load() }

// Disposed returns a handle that is already disposed. Used where an
// operation has nothing left to cancel, e.g. observing a terminated signal.
func Disposed() Disposable {
	d := &actionDisposable{}
	d.disposed.Store(true)
	return d
}
