package pqueue

import "errors"

// Sentinel errors returned by Queue operations. Callers should branch on
// these with errors.Is rather than comparing strings.
var (
	// ErrDuplicateItem is returned by Enqueue when the item is already present.
	ErrDuplicateItem = errors.New("pqueue: item already enqueued")

	// ErrEmptyQueue is returned by Dequeue/Peek when the queue holds no items.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrItemNotFound is returned by UpdatePriority/GetPriority when the
	// item is not currently enqueued.
	ErrItemNotFound = errors.New("pqueue: item not found")
)
