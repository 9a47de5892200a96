package arraylist

import (
	"fmt"

	"github.com/kabu1204/go-vector/quicksort"
	"github.com/kabu1204/go-vector/types"
)

// Len, Less and Swap implement sort.Interface. Less panics when the Array
// was built without a comparator.
func (a *Array[T]) Len() int           { return a.size }
func (a *Array[T]) Swap(i, j int)      { a.data[i], a.data[j] = a.data[j], a.data[i] }
func (a *Array[T]) Less(i, j int) bool { return a.cmp(a.data[i], a.data[j]) < 0 }

func (a *Array[T]) Comparator() types.Comparator[T] { return a.cmp }

// Sort orders the elements in place by the Array's comparator.
func (a *Array[T]) Sort(opts ...quicksort.Option) error {
	if a.cmp == nil {
		return fmt.Errorf("arraylist: sort without comparator: %w", ErrInvalidArgument)
	}
	return quicksort.SortWith[T](a, a.cmp, opts...)
}

// SortFunc orders the elements in place by c.
func (a *Array[T]) SortFunc(c types.Comparator[T], opts ...quicksort.Option) error {
	return quicksort.SortWith[T](a, c, opts...)
}
