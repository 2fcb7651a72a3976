package signal

import (
	"sync"

	"github.com/signalmesh/signalmesh/disposable"
	"github.com/signalmesh/signalmesh/event"
	"github.com/signalmesh/signalmesh/result"
)

// First starts one run of p and blocks the calling goroutine until the run
// produces its first event. The first value yields a success and disposes
// the run immediately, so no further values are ever produced. A failure
// yields that error. Completion without a value yields
// ErrExpectedSingleValue.
//
// The blocking wait is released by a cleanup action registered into the
// run's composite: disposal, however it happens, always unblocks the
// caller exactly once. A producer that never emits and is never disposed
// blocks forever; that is caller misuse, matching Never's contract.
func First[T any](p *Producer[T]) result.Result[T] {
	var (
		mu   sync.Mutex
		res  result.Result[T]
		got  bool
		once sync.Once
	)
	done := make(chan struct{})

	p.Start(func(sig *Signal[T], run *disposable.Composite) {
		run.AddAction(func() {
			once.Do(func() { close(done) })
		})
		record := func(r result.Result[T]) {
			mu.Lock()
			if !got {
				got = true
				res = r
			}
			mu.Unlock()
			run.Dispose()
		}
		sig.ObserveFunc(
			event.OnNext(func(v T) { record(result.Success(v)) }),
			event.OnFailed[T](func(err error) { record(result.Failure[T](err)) }),
			event.OnCompleted[T](func() { record(result.Failure[T](ErrExpectedSingleValue)) }),
		)
	})

	<-done
	mu.Lock()
	defer mu.Unlock()
	return res
}
