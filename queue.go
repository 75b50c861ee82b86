package calldispatch

import (
	"iter"

	"deedles.dev/calldispatch/internal/list"
)

// A Queue collects values and returns them in FIFO order. A zero value
// Queue is ready to use.
//
// A Queue only ever inserts at the tail of its underlying list and
// removes from the head, so it cannot be used to reach into the middle
// of the sequence. It is not safe for concurrent use.
type Queue[T comparable] struct {
	list list.Single[T]
}

// Enqueue adds v to the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.list.Append(v)
}

// Dequeue removes and returns the value at the front of the queue. If
// the queue is empty it returns [ErrEmptyQueue] and leaves the queue
// untouched.
func (q *Queue[T]) Dequeue() (v T, err error) {
	v, ok := q.list.PopFront()
	if !ok {
		return v, ErrEmptyQueue
	}
	return v, nil
}

// Peek returns the value at the front of the queue without removing
// it.
func (q *Queue[T]) Peek() (v T, err error) {
	v, ok := q.list.Peek()
	if !ok {
		return v, ErrEmptyQueue
	}
	return v, nil
}

// IsEmpty reports whether the queue holds no values.
func (q *Queue[T]) IsEmpty() bool {
	return q.list.IsEmpty()
}

// Len returns the number of values in the queue.
func (q *Queue[T]) Len() int {
	return q.list.Len()
}

// All returns an iterator over the queued values from front to back.
// It does not remove anything.
func (q *Queue[T]) All() iter.Seq[T] {
	return q.list.All()
}

// Clear drops every value in the queue and returns how many there
// were.
func (q *Queue[T]) Clear() int {
	return q.list.Clear()
}
