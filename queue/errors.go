package queue

// EmptyError is returned when an element is requested from a container that holds none.
//
// Every EmptyError is the same kind of failure regardless of the container that produced it,
// so errors.Is matches any two of them.
type EmptyError struct {
	Container string
}

func (e *EmptyError) Error() string {
	return e.Container + " is empty"
}

// Is reports whether target is an EmptyError.
func (e *EmptyError) Is(target error) bool {
	_, ok := target.(*EmptyError)
	return ok
}

// ErrEmpty is returned by Dequeue and Peek on an empty queue.
var ErrEmpty = &EmptyError{Container: "queue"}
