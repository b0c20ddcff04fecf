// Package stack provides last-in-first-out containers, most notably one built solely from two FIFO queues.
package stack

import (
	"github.com/samber/lo"
	"github.com/stackq/stackq/queue"
)

// ErrEmpty is returned by Pop and Peek on an empty stack.
// It matches queue.ErrEmpty under errors.Is.
var ErrEmpty error = &queue.EmptyError{Container: "stack"}

// Interface is the behavior shared by every stack implementation in this package.
type Interface[T any] interface {
	Push(value T)
	Pop() (T, error)
	Peek() (T, error)
	Len() int
	IsEmpty() bool
	// Values returns the elements bottom to top.
	Values() []T
	Clear()
}

var (
	_ Interface[any] = (*Stack[any])(nil)
	_ Interface[any] = (*Slice[any])(nil)
	_ Interface[any] = (*Synchronized[any])(nil)
)

// Stack is a LIFO adapter that stores its elements in two queues and never indexes them.
//
// Push is O(1). Pop and Peek rotate every live element through the secondary queue, so they are O(n).
// Between operations all elements live in primary in push order and secondary is empty.
//
// The zero value is an empty stack ready to use. Stack is not safe for concurrent use, see Synchronized.
type Stack[T any] struct {
	size      int
	primary   queue.Queue[T]
	secondary queue.Queue[T]
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places a value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.primary.Enqueue(value)
	s.size++
}

// Pop removes and returns the most recently pushed value.
// On an empty stack it returns ErrEmpty and leaves the stack untouched.
func (s *Stack[T]) Pop() (value T, err error) {
	if s.size == 0 {
		return value, ErrEmpty
	}

	s.rotate()
	value = lo.Must(s.primary.Dequeue())
	s.swap()
	s.size--

	return value, nil
}

// Peek returns the most recently pushed value without removing it.
func (s *Stack[T]) Peek() (value T, err error) {
	if s.size == 0 {
		return value, ErrEmpty
	}

	s.rotate()
	value = lo.Must(s.primary.Dequeue())
	// Re-queue the top behind the others so order is unchanged after the swap.
	s.secondary.Enqueue(value)
	s.swap()

	return value, nil
}

// rotate moves all but the newest element from primary to secondary.
func (s *Stack[T]) rotate() {
	for s.primary.Size() > 1 {
		s.secondary.Enqueue(lo.Must(s.primary.Dequeue()))
	}
}

// swap exchanges the queue roles. Only the handles move, elements are not copied.
func (s *Stack[T]) swap() {
	s.primary, s.secondary = s.secondary, s.primary
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.size
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.size == 0
}

// Values returns the elements bottom to top.
func (s *Stack[T]) Values() []T {
	return s.primary.Values()
}

// Queues returns snapshots of the primary and secondary queues, head first.
func (s *Stack[T]) Queues() (primary, secondary []T) {
	return s.primary.Values(), s.secondary.Values()
}

// Clear removes all elements from the stack.
func (s *Stack[T]) Clear() {
	s.primary.Clear()
	s.secondary.Clear()
	s.size = 0
}
