// Package bag provides an insertion-ordered registry over opaque payloads.
// Each insertion hands back a removal token; removal by token is O(1)
// amortized. Iteration happens over a snapshot, so a fan-out pass is never
// corrupted by concurrent insertion or removal.
//
// A Bag performs no synchronization of its own: callers hold the relevant
// lock (Signal and Buffer do).
package bag
