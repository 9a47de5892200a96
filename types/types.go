package types

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
)

type (
	// Comparator returns a negative number when a < b, zero when a == b and
	// a positive number when a > b.
	Comparator[T any] func(a, b T) int

	Predicate[T any] func(T) bool

	HashFunction[T any] func(T) int
)

// Natural orders values by their built-in ordering.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// FromGods adapts a gods comparator. Values handed to it are boxed as T.
func FromGods[T any](c utils.Comparator) Comparator[T] {
	return func(a, b T) int { return c(a, b) }
}

func ToGods[T any](c Comparator[T]) utils.Comparator {
	return func(a, b interface{}) int { return c(a.(T), b.(T)) }
}
