// Package signal implements the signalmesh stream engine: the hot Signal,
// the cold Producer, and the derived constructs built purely on top of
// them (bounded replay Buffer, periodic Timer, side-effect injection On,
// the blocking extraction First, and operator lifting).
//
// A Signal is a live event stream. Its generator runs exactly once at
// construction and pushes events through the signal's input observer; any
// number of observers may attach and detach independently, and the first
// terminating event frees them all. A Producer is a re-runnable stream
// factory: no work happens until Start, and every Start is an independent
// run with its own Signal and cancellation handle.
//
// Delivery is strictly ordered per subscription, even under concurrent
// production: events are appended to a pending queue under the state lock
// and drained by a single drainer outside it. A re-entrant push from
// inside a delivery callback therefore enqueues and returns instead of
// deadlocking.
package signal
