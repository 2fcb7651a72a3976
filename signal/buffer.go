package signal

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/signalmesh/signalmesh/bag"
	"github.com/signalmesh/signalmesh/disposable"
	"github.com/signalmesh/signalmesh/event"
)

// Buffer returns a paired producer and observer sharing a bounded replay
// log. Events pushed into the observer append to the log — evicting the
// oldest entries past capacity — and fan out to every live subscriber.
// Each Start of the producer first replays the entire retained log to the
// new observer in original order, then attaches it for live events.
//
// A terminating event freezes the buffer: it is appended to the log
// (exempt from eviction), all live subscribers are released after
// receiving it, and later events are ignored. Late subscribers still get
// the full retained log including the terminal event.
//
// capacity must be non-negative; zero retains only the terminal event.
func Buffer[T any](capacity int) (*Producer[T], event.Observer[T]) {
	if capacity < 0 {
		panic("signal: buffer capacity must be non-negative")
	}
	st := &bufferState[T]{
		log:      queue.New(),
		subs:     bag.New[event.Observer[T]](),
		capacity: capacity,
	}
	p := NewProducer(func(o event.Observer[T], run *disposable.Composite) {
		st.attach(o, run)
	})
	return p, bufferInput[T]{st: st}
}

// bufferInput is the observer half of a Buffer pair.
type bufferInput[T any] struct{ st *bufferState[T] }

func (in bufferInput[T]) Put(e event.Event[T]) { in.st.publish(e) }

// bufferState guards the log and the live subscriber bag with one lock.
// Log mutation and fan-out snapshots happen atomically under it; the
// deliveries themselves are deferred onto an ops queue drained by a single
// drainer outside the lock, which keeps delivery totally ordered and makes
// a re-entrant publish or subscribe from inside a delivery safe.
type bufferState[T any] struct {
	mu         sync.Mutex
	log        *queue.Queue
	subs       *bag.Bag[event.Observer[T]]
	capacity   int
	terminated bool

	ops      []func()
	draining bool
}

func (st *bufferState[T]) publish(e event.Event[T]) {
	st.mu.Lock()
	if st.terminated {
		st.mu.Unlock()
		return
	}

	st.log.Add(e)
	var targets []event.Observer[T]
	if e.IsTerminating() {
		st.terminated = true
		targets = st.subs.Snapshot()
		st.subs.Clear()
	} else {
		for st.log.Length() > st.capacity {
			st.log.Remove()
		}
		targets = st.subs.Snapshot()
	}

	st.ops = append(st.ops, func() {
		for _, o := range targets {
			o.Put(e)
		}
	})
	st.drain()
}

func (st *bufferState[T]) attach(o event.Observer[T], run *disposable.Composite) {
	st.mu.Lock()
	replay := make([]event.Event[T], 0, st.log.Length())
	for i := 0; i < st.log.Length(); i++ {
		replay = append(replay, st.log.Get(i).(event.Event[T]))
	}
	var tok bag.Token
	live := !st.terminated
	if live {
		tok = st.subs.Insert(o)
	}
	st.ops = append(st.ops, func() {
		for _, e := range replay {
			o.Put(e)
		}
	})
	st.drain()

	// Registered after releasing the state lock: a racing disposal of the
	// run would otherwise execute the removal synchronously and deadlock.
	if live {
		run.AddAction(func() {
			st.mu.Lock()
			st.subs.Remove(tok)
			st.mu.Unlock()
		})
	}
}

// drain executes queued delivery ops in order. Called with st.mu held;
// returns with it released.
func (st *bufferState[T]) drain() {
	if st.draining {
		st.mu.Unlock()
		return
	}
	st.draining = true
	for len(st.ops) > 0 {
		op := st.ops[0]
		st.ops = st.ops[1:]
		st.mu.Unlock()
		op()
		st.mu.Lock()
	}
	st.draining = false
	st.mu.Unlock()
}
