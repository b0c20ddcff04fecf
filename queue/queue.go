// Package queue provides a generic first-in-first-out container.
package queue

// compactThreshold is the minimal number of consumed slots before the backing slice is compacted.
const compactThreshold = 32

// Queue is a FIFO container over a growable slice.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	items []T
	head  int
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends a value to the tail of the queue.
func (q *Queue[T]) Enqueue(value T) {
	q.items = append(q.items, value)
}

// Dequeue removes and returns the head of the queue.
func (q *Queue[T]) Dequeue() (value T, err error) {
	if q.IsEmpty() {
		return value, ErrEmpty
	}

	var zero T
	value = q.items[q.head]
	q.items[q.head] = zero
	q.head++

	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0
	case q.head >= compactThreshold && q.head*2 >= len(q.items):
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return value, nil
}

// Peek returns the head of the queue without removing it.
func (q *Queue[T]) Peek() (value T, err error) {
	if q.IsEmpty() {
		return value, ErrEmpty
	}
	return q.items[q.head], nil
}

// Size returns the number of elements in the queue.
func (q *Queue[T]) Size() int {
	return len(q.items) - q.head
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.Size() == 0
}

// Values returns a copy of the queued elements, head first.
func (q *Queue[T]) Values() []T {
	values := make([]T, q.Size())
	copy(values, q.items[q.head:])
	return values
}

// Clear removes all elements from the queue.
func (q *Queue[T]) Clear() {
	q.items = nil
	q.head = 0
}
