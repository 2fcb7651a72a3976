// Package disposable provides cancellation handles for stream runs.
// A Disposable transitions to disposed exactly once, running its cleanup
// action at most once even under concurrent Dispose calls. A Composite owns
// a set of disposables and cancels the whole tree transitively, in
// insertion order.
package disposable
