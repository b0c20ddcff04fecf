package stack

// Slice is a LIFO container backed by a single slice.
// It shares the error contract of Stack and serves as its reference behavior.
type Slice[T any] struct {
	items []T
}

// NewSlice returns an empty slice-backed stack.
func NewSlice[T any]() *Slice[T] {
	return &Slice[T]{}
}

// Push appends a new element to the top of the stack.
func (s *Slice[T]) Push(value T) {
	s.items = append(s.items, value)
}

// Pop removes and returns the topmost element of the stack.
func (s *Slice[T]) Pop() (value T, err error) {
	if len(s.items) == 0 {
		return value, ErrEmpty
	}
	idx := len(s.items) - 1
	value = s.items[idx]
	var zero T
	s.items[idx] = zero
	s.items = s.items[:idx]
	return value, nil
}

// Peek returns the topmost element without removing it.
func (s *Slice[T]) Peek() (value T, err error) {
	if len(s.items) == 0 {
		return value, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// Len returns the total number of elements currently stored in the stack.
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the stack holds no elements.
func (s *Slice[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Values returns the elements bottom to top.
func (s *Slice[T]) Values() []T {
	values := make([]T, len(s.items))
	copy(values, s.items)
	return values
}

// Clear removes all elements from the stack, resetting it to an empty state.
func (s *Slice[T]) Clear() {
	s.items = nil
}
