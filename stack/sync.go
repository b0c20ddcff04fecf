package stack

import "sync"

// Synchronized guards a stack with a single mutex.
// A push must never interleave with the rotation performed by a pop, so every call holds the lock for its whole duration.
type Synchronized[T any] struct {
	mu    sync.Mutex
	inner Interface[T]
}

// NewSynchronized wraps inner. The caller must not use inner directly afterwards.
func NewSynchronized[T any](inner Interface[T]) *Synchronized[T] {
	return &Synchronized[T]{inner: inner}
}

// Push places value on top of the wrapped stack.
func (s *Synchronized[T]) Push(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Push(value)
}

// Pop removes and returns the top element, or ErrEmpty.
func (s *Synchronized[T]) Pop() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Pop()
}

// Peek returns the top element without removing it, or ErrEmpty.
func (s *Synchronized[T]) Peek() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Peek()
}

// Len returns the number of elements.
func (s *Synchronized[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Len()
}

// IsEmpty reports whether the stack holds no elements.
func (s *Synchronized[T]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.IsEmpty()
}

// Values returns a snapshot of the elements, bottom first.
func (s *Synchronized[T]) Values() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Values()
}

// Clear removes every element.
func (s *Synchronized[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Clear()
}

// Do runs fn with exclusive access to the wrapped stack, for compound operations such as pop-then-push.
func (s *Synchronized[T]) Do(fn func(Interface[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.inner)
}
