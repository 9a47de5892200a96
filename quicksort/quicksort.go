// Package quicksort sorts indexed containers in place with a Hoare
// partition around the middle element.
//
// The sort is not stable: elements that compare equal may come out in a
// different relative order than they went in.
package quicksort

import (
	"cmp"
	"fmt"

	"github.com/kabu1204/go-vector/types"
)

var ErrInvalidArgument = types.ErrInvalidArgument

// Container is anything addressable by index in [0, Size()).
type Container[T any] interface {
	Size() int
	Get(index int) (T, error)
	Set(index int, value T) (T, error)
}

// Backed is implemented by containers that can hand out their live
// elements as a slice. Writes through the slice must be visible in the
// container.
type Backed[T any] interface {
	Backing() []T
}

// SortNatural sorts c ascending by the natural order of T.
func SortNatural[T cmp.Ordered](c Container[T], opts ...Option) error {
	return SortWith(c, types.Natural[T](), opts...)
}

// SortWith sorts c so that compare(c[i], c[i+1]) <= 0 for every i.
func SortWith[T any](c Container[T], compare types.Comparator[T], opts ...Option) error {
	if c == nil {
		return fmt.Errorf("quicksort: nil container: %w", ErrInvalidArgument)
	}
	if compare == nil {
		return fmt.Errorf("quicksort: nil comparator: %w", ErrInvalidArgument)
	}
	conf := newConfig(opts)
	n := c.Size()
	if n < 2 {
		return nil
	}
	if conf.parallelism > 1 && n > conf.threshold {
		return sortParallel(c, compare, n, conf)
	}
	s := sequenceOf(c)
	sortRange(s, compare, 0, n-1)
	return s.error()
}

// IsSorted reports whether c is ordered by compare.
func IsSorted[T any](c Container[T], compare types.Comparator[T]) (bool, error) {
	if compare == nil {
		return false, fmt.Errorf("quicksort: nil comparator: %w", ErrInvalidArgument)
	}
	s := sequenceOf(c)
	for i := c.Size() - 1; i > 0; i-- {
		if compare(s.at(i-1), s.at(i)) > 0 {
			return false, s.error()
		}
	}
	return true, s.error()
}
