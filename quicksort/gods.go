package quicksort

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/kabu1204/go-vector/types"
)

// GodsList lets a gods array list be sorted in place. Every element of
// the list must be a T.
type GodsList[T any] struct {
	List *arraylist.List
}

func (g GodsList[T]) Size() int { return g.List.Size() }

func (g GodsList[T]) Get(index int) (T, error) {
	var zero T
	v, ok := g.List.Get(index)
	if !ok {
		return zero, fmt.Errorf("quicksort: get %d of %d: %w", index, g.List.Size(), types.ErrIndexOutOfRange)
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("quicksort: element %d is %T: %w", index, v, ErrInvalidArgument)
	}
	return t, nil
}

func (g GodsList[T]) Set(index int, value T) (T, error) {
	old, err := g.Get(index)
	if err != nil {
		return old, err
	}
	g.List.Set(index, value)
	return old, nil
}
