package quicksort

import "github.com/kabu1204/go-vector/types"

type sequence[T any] interface {
	at(i int) T
	swap(i, j int)
	error() error
}

func sequenceOf[T any](c Container[T]) sequence[T] {
	if b, ok := c.(Backed[T]); ok {
		return sliceSequence[T](b.Backing())
	}
	return &containerSequence[T]{c: c}
}

type sliceSequence[T any] []T

func (s sliceSequence[T]) at(i int) T    { return s[i] }
func (s sliceSequence[T]) swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s sliceSequence[T]) error() error  { return nil }

// containerSequence goes through Get and Set. After the first failure it
// stops writing and remembers the error.
type containerSequence[T any] struct {
	c   Container[T]
	err error
}

func (s *containerSequence[T]) at(i int) T {
	if s.err != nil {
		var zero T
		return zero
	}
	v, err := s.c.Get(i)
	if err != nil {
		s.err = err
	}
	return v
}

func (s *containerSequence[T]) swap(i, j int) {
	if s.err != nil {
		return
	}
	a, b := s.at(i), s.at(j)
	if s.err != nil {
		return
	}
	if _, s.err = s.c.Set(i, b); s.err != nil {
		return
	}
	_, s.err = s.c.Set(j, a)
}

func (s *containerSequence[T]) error() error { return s.err }

// sortRange sorts the closed range [from, to]. It recurses into the smaller
// half and loops on the larger one, so the stack stays O(log n) deep.
func sortRange[T any](s sequence[T], compare types.Comparator[T], from, to int) {
	for from < to {
		left, right := partition(s, compare, from, to)
		if right-from < to-left {
			sortRange(s, compare, from, right)
			from = left
		} else {
			sortRange(s, compare, left, to)
			to = right
		}
	}
}

// partition splits [from, to] so that [from, right] holds nothing greater
// than the pivot and [left, to] nothing smaller. right < left on return.
func partition[T any](s sequence[T], compare types.Comparator[T], from, to int) (left, right int) {
	// the pivot is held by value; swaps below may move its slot.
	pivot := s.at(from + (to-from)/2)
	left, right = from, to
	for left <= right {
		for left < to && compare(pivot, s.at(left)) > 0 {
			left++
		}
		for right > from && compare(pivot, s.at(right)) < 0 {
			right--
		}
		if left <= right {
			s.swap(left, right)
			left++
			right--
		}
	}
	return left, right
}
