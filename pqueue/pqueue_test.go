package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadgraph/pqueue"
)

func TestEnqueueDequeueOrder(t *testing.T) {
	q := pqueue.New[string]()
	require.NoError(t, q.Enqueue("c", 3))
	require.NoError(t, q.Enqueue("a", 1))
	require.NoError(t, q.Enqueue("b", 2))
	require.Equal(t, 3, q.Size())

	for _, want := range []string{"a", "b", "c"} {
		got, err := q.Dequeue()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.True(t, q.IsEmpty())
}

func TestEnqueueDuplicate(t *testing.T) {
	q := pqueue.New[int]()
	require.NoError(t, q.Enqueue(1, 5))
	require.ErrorIs(t, q.Enqueue(1, 9), pqueue.ErrDuplicateItem)
}

func TestDequeueEmpty(t *testing.T) {
	q := pqueue.New[int]()
	_, err := q.Dequeue()
	require.ErrorIs(t, err, pqueue.ErrEmptyQueue)
}

func TestUpdatePriorityLowersAndRaises(t *testing.T) {
	q := pqueue.New[string]()
	require.NoError(t, q.Enqueue("x", 10))
	require.NoError(t, q.Enqueue("y", 20))
	require.NoError(t, q.Enqueue("z", 30))

	// Lower z below everything: it should dequeue first.
	require.NoError(t, q.UpdatePriority("z", 1))
	require.True(t, q.Contains("z"))
	p, err := q.GetPriority("z")
	require.NoError(t, err)
	require.Equal(t, 1.0, p)

	first, err := q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, "z", first)

	// Raise y above x.
	require.NoError(t, q.UpdatePriority("y", 1000))
	second, err := q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, "x", second)
}

func TestUpdatePriorityMissing(t *testing.T) {
	q := pqueue.New[int]()
	require.ErrorIs(t, q.UpdatePriority(7, 1), pqueue.ErrItemNotFound)
	_, err := q.GetPriority(7)
	require.ErrorIs(t, err, pqueue.ErrItemNotFound)
}

func TestHeapify(t *testing.T) {
	items := map[string]float64{"a": 5, "b": 1, "c": 3, "d": 2, "e": 4}
	q := pqueue.Heapify(items)
	require.Equal(t, 5, q.Size())

	var order []string
	for !q.IsEmpty() {
		v, err := q.Dequeue()
		require.NoError(t, err)
		order = append(order, v)
	}
	require.Equal(t, []string{"b", "d", "c", "e", "a"}, order)
}

// TestDequeueIsNonDecreasing checks that dequeue always returns the
// minimum of everything still held, across a mixed sequence of enqueues
// and priority updates.
func TestDequeueIsNonDecreasing(t *testing.T) {
	q := pqueue.New[int]()
	priority := map[int]float64{}
	vals := []float64{50, 30, 70, 10, 40, 60, 80, 5, 90}
	for i, v := range vals {
		require.NoError(t, q.Enqueue(i, v))
		priority[i] = v
	}
	require.NoError(t, q.UpdatePriority(2, 1)) // item 2 (was 70) becomes the new minimum
	priority[2] = 1
	require.NoError(t, q.UpdatePriority(8, 2)) // item 8 (was 90) becomes the second minimum
	priority[8] = 2

	last := -1.0
	for !q.IsEmpty() {
		item, err := q.Dequeue()
		require.NoError(t, err)
		require.GreaterOrEqual(t, priority[item], last, "dequeue order must be non-decreasing")
		last = priority[item]
	}
}
