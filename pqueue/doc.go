// Package pqueue implements an addressable binary min-heap: a priority
// queue that, in addition to the usual Enqueue/Dequeue, supports looking
// up and lowering (or raising) the priority of an item already inside the
// heap in O(log n).
//
// Addressability is what makes the heap suitable for Dijkstra-style
// relaxation: when a shorter distance to a vertex is discovered, the
// caller updates that vertex's existing entry in place instead of pushing
// a stale duplicate and filtering it out later ("lazy decrease-key").
// The heap maintains an item→index map, kept consistent on every swap, so
// UpdatePriority can locate an item without a linear scan.
//
// Items are identified by a comparable handle (the type parameter K), not
// by their priority — two items with equal priority remain distinct
// entries, and updating one never affects the other.
package pqueue
