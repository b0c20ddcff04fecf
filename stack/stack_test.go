package stack

import (
	"errors"
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stackq/stackq/queue"
)

// quiescent asserts the representation invariant that holds between operations.
func quiescent[T any](s *Stack[T]) {
	So(s.secondary.IsEmpty(), ShouldBeTrue)
	So(s.primary.Size(), ShouldEqual, s.size)
	So(s.IsEmpty(), ShouldEqual, s.Len() == 0)
}

func TestStack(t *testing.T) {
	Convey("Given an empty stack", t, func() {
		s := New[int]()

		Convey("Pop and Peek fail cleanly", func() {
			_, err := s.Pop()
			So(err, ShouldEqual, ErrEmpty)
			So(err.Error(), ShouldEqual, "stack is empty")
			So(errors.Is(err, queue.ErrEmpty), ShouldBeTrue)

			_, err = s.Peek()
			So(err, ShouldEqual, ErrEmpty)

			So(s.IsEmpty(), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 0)
			quiescent(s)

			s.Push(42)
			v, err := s.Pop()
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 42)
		})

		Convey("The zero value behaves the same", func() {
			var zero Stack[string]
			_, err := zero.Pop()
			So(err, ShouldEqual, ErrEmpty)
			zero.Push("a")
			v, err := zero.Pop()
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "a")
		})

		Convey("When values are pushed", func() {
			for i := 1; i <= 5; i++ {
				s.Push(i)
				quiescent(s)
			}

			Convey("They are stored in push order in the primary queue", func() {
				primary, secondary := s.Queues()
				So(primary, ShouldResemble, []int{1, 2, 3, 4, 5})
				So(secondary, ShouldBeEmpty)
				So(s.Values(), ShouldResemble, []int{1, 2, 3, 4, 5})
			})

			Convey("Peek exposes the top without mutation", func() {
				for i := 0; i < 3; i++ {
					v, err := s.Peek()
					So(err, ShouldBeNil)
					So(v, ShouldEqual, 5)
					So(s.Len(), ShouldEqual, 5)
					So(s.Values(), ShouldResemble, []int{1, 2, 3, 4, 5})
					quiescent(s)
				}
			})

			Convey("They pop in reverse order", func() {
				for i := 5; i >= 1; i-- {
					v, err := s.Pop()
					So(err, ShouldBeNil)
					So(v, ShouldEqual, i)
					So(s.Len(), ShouldEqual, i-1)
					quiescent(s)
				}

				_, err := s.Pop()
				So(err, ShouldEqual, ErrEmpty)
				So(s.IsEmpty(), ShouldBeTrue)
			})

			Convey("Clear empties both queues", func() {
				s.Clear()
				So(s.IsEmpty(), ShouldBeTrue)
				quiescent(s)
			})
		})
	})
}

func TestReferenceScenario(t *testing.T) {
	Convey("The reference push/pop scenario", t, func() {
		s := New[int]()

		pop := func() (int, error) {
			v, err := s.Pop()
			quiescent(s)
			return v, err
		}

		_, err := pop()
		So(err, ShouldEqual, ErrEmpty)

		s.Push(1)
		s.Push(2)
		s.Push(3)

		for _, want := range []int{3, 2} {
			v, err := pop()
			So(err, ShouldBeNil)
			So(v, ShouldEqual, want)
		}

		s.Push(4)
		s.Push(5)
		So(s.IsEmpty(), ShouldBeFalse)

		for _, want := range []int{5, 4, 1} {
			v, err := pop()
			So(err, ShouldBeNil)
			So(v, ShouldEqual, want)
		}

		_, err = pop()
		So(err, ShouldEqual, ErrEmpty)
		So(s.IsEmpty(), ShouldBeTrue)
	})
}

func TestRoundTrip(t *testing.T) {
	Convey("Pushing then popping n elements restores the empty representation", t, func() {
		for _, n := range []int{0, 1, 2, 17, 100} {
			s := New[int]()
			for i := 0; i < n; i++ {
				s.Push(i)
			}
			for i := n - 1; i >= 0; i-- {
				v, err := s.Pop()
				So(err, ShouldBeNil)
				So(v, ShouldEqual, i)
			}

			primary, secondary := s.Queues()
			So(primary, ShouldBeEmpty)
			So(secondary, ShouldBeEmpty)
			So(s.Len(), ShouldEqual, 0)
			So(s.IsEmpty(), ShouldBeTrue)
		}
	})
}

func TestMatchesSliceStack(t *testing.T) {
	Convey("Any interleaving of operations matches the slice-backed stack", t, func() {
		rng := rand.New(rand.NewSource(1))

		for round := 0; round < 20; round++ {
			adapter, reference := New[int](), NewSlice[int]()

			for i := 0; i < 200; i++ {
				switch op := rng.Intn(10); {
				case op < 5:
					adapter.Push(i)
					reference.Push(i)
				case op < 8:
					got, gotErr := adapter.Pop()
					want, wantErr := reference.Pop()
					So(gotErr, ShouldEqual, wantErr)
					So(got, ShouldEqual, want)
				default:
					got, gotErr := adapter.Peek()
					want, wantErr := reference.Peek()
					So(gotErr, ShouldEqual, wantErr)
					So(got, ShouldEqual, want)
				}

				So(adapter.Len(), ShouldEqual, reference.Len())
				So(adapter.IsEmpty(), ShouldEqual, reference.IsEmpty())
			}

			So(adapter.Values(), ShouldResemble, reference.Values())
		}
	})
}

func TestSlice(t *testing.T) {
	Convey("Slice", t, func() {
		var s Slice[int]
		_, err := s.Peek()
		So(err, ShouldEqual, ErrEmpty)

		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)

		top, err := s.Peek()
		So(err, ShouldBeNil)
		So(top, ShouldEqual, 2)

		item, _ := s.Pop()
		So(item, ShouldEqual, 2)
		item, _ = s.Pop()
		So(item, ShouldEqual, 1)

		_, err = s.Pop()
		So(err, ShouldEqual, ErrEmpty)
		So(s.IsEmpty(), ShouldBeTrue)
	})
}
