// Package arraylist provides Array, a growable indexed sequence.
//
// An Array is not safe for concurrent use. Callers sharing one across
// goroutines must guard it themselves.
package arraylist

import (
	"cmp"
	"fmt"
	"math"
	"strings"

	"github.com/kabu1204/go-vector/optional"
	"github.com/kabu1204/go-vector/types"
)

const DefaultCapacity = 10

var (
	ErrInvalidArgument = types.ErrInvalidArgument
	ErrIndexOutOfRange = types.ErrIndexOutOfRange
)

type Array[T comparable] struct {
	data []T
	size int
	cmp  types.Comparator[T]
}

type Option[T comparable] func(*Array[T])

// WithComparator sets the ordering used by Sort and by the sort.Interface
// methods.
func WithComparator[T comparable](c types.Comparator[T]) Option[T] {
	return func(a *Array[T]) { a.cmp = c }
}

func New[T comparable](opts ...Option[T]) *Array[T] {
	a, _ := NewWithCapacity(DefaultCapacity, opts...)
	return a
}

// NewWithCapacity preallocates room for capacity elements. A capacity of 0
// selects DefaultCapacity.
func NewWithCapacity[T comparable](capacity int, opts ...Option[T]) (*Array[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("arraylist: capacity %d: %w", capacity, ErrInvalidArgument)
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	a := &Array[T]{data: make([]T, capacity)}
	for _, o := range opts {
		o(a)
	}
	return a, nil
}

// NewOrdered returns an Array whose Sort uses the natural order of T.
func NewOrdered[T cmp.Ordered](opts ...Option[T]) *Array[T] {
	return New(append([]Option[T]{WithComparator(types.Natural[T]())}, opts...)...)
}

func Of[T comparable](elems ...T) *Array[T] {
	a, _ := NewWithCapacity[T](len(elems))
	a.Append(elems...)
	return a
}

func (a *Array[T]) Size() int     { return a.size }
func (a *Array[T]) Capacity() int { return len(a.data) }
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }

func (a *Array[T]) checkIndex(op string, index, limit int) error {
	if index < 0 || index >= limit {
		return fmt.Errorf("arraylist: %s index %d out of bounds for size %d: %w", op, index, a.size, ErrIndexOutOfRange)
	}
	return nil
}

func (a *Array[T]) Get(index int) (T, error) {
	if err := a.checkIndex("get", index, a.size); err != nil {
		var zero T
		return zero, err
	}
	return a.data[index], nil
}

// Set replaces the element at index and returns the previous one.
func (a *Array[T]) Set(index int, value T) (T, error) {
	if err := a.checkIndex("set", index, a.size); err != nil {
		var zero T
		return zero, err
	}
	old := a.data[index]
	a.data[index] = value
	return old, nil
}

// Insert places value at index, shifting later elements right. index may
// equal Size().
func (a *Array[T]) Insert(index int, value T) error {
	if err := a.checkIndex("insert", index, a.size+1); err != nil {
		return err
	}
	if a.size == len(a.data) {
		a.grow()
	}
	copy(a.data[index+1:a.size+1], a.data[index:a.size])
	a.data[index] = value
	a.size++
	return nil
}

func (a *Array[T]) Append(values ...T) {
	for _, v := range values {
		if a.size == len(a.data) {
			a.grow()
		}
		a.data[a.size] = v
		a.size++
	}
}

// grow enlarges the buffer by half, and always by at least one slot.
func (a *Array[T]) grow() {
	newCap := max(a.size+1, int(math.Round(float64(a.size)*1.5)))
	data := make([]T, newCap)
	copy(data, a.data[:a.size])
	a.data = data
}

func (a *Array[T]) RemoveAt(index int) (T, error) {
	if err := a.checkIndex("remove", index, a.size); err != nil {
		var zero T
		return zero, err
	}
	old := a.data[index]
	copy(a.data[index:], a.data[index+1:a.size])
	a.size--
	var zero T
	a.data[a.size] = zero
	return old, nil
}

// Remove deletes the first element equal to value and reports whether one
// was found.
func (a *Array[T]) Remove(value T) bool {
	i := a.IndexOf(value)
	if i < 0 {
		return false
	}
	_, _ = a.RemoveAt(i)
	return true
}

// IndexOf returns the index of the first element equal to value, or -1.
func (a *Array[T]) IndexOf(value T) int {
	for i := 0; i < a.size; i++ {
		if a.data[i] == value {
			return i
		}
	}
	return -1
}

func (a *Array[T]) Contains(value T) bool { return a.IndexOf(value) >= 0 }

// Find returns the first element matching p.
func (a *Array[T]) Find(p types.Predicate[T]) optional.Optional[T] {
	for i := 0; i < a.size; i++ {
		if p(a.data[i]) {
			return optional.Some[T]{Value: a.data[i]}
		}
	}
	return optional.None[T]{}
}

// Clear drops all elements. The capacity is kept.
func (a *Array[T]) Clear() {
	clear(a.data[:a.size])
	a.size = 0
}

func (a *Array[T]) ToSlice() []T {
	s := make([]T, a.size)
	copy(s, a.data[:a.size])
	return s
}

// Backing exposes the live elements. The slice aliases the Array's storage
// and is invalidated by the next call that grows it.
func (a *Array[T]) Backing() []T { return a.data[:a.size] }

func (a *Array[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < a.size; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, a.data[i])
	}
	b.WriteByte(']')
	return b.String()
}
