package arraylist

import (
	"hash/maphash"

	"github.com/cornelk/hashmap"
	"github.com/kabu1204/go-vector/types"
)

var seed = maphash.MakeSeed()

// Equal reports whether both arrays hold equal elements in the same order.
// Capacity and comparator are ignored.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil || a.size != other.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Hash is consistent with Equal within one process.
func (a *Array[T]) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	maphash.WriteComparable(&h, a.size)
	for i := 0; i < a.size; i++ {
		maphash.WriteComparable(&h, a.data[i])
	}
	return h.Sum64()
}

// Distinct returns a new Array keeping the first element of every hash
// key, in order. The receiver is left untouched.
func (a *Array[T]) Distinct(f types.HashFunction[T]) *Array[T] {
	out, _ := NewWithCapacity(a.size, WithComparator(a.cmp))
	set := &hashmap.HashMap{}
	for i := 0; i < a.size; i++ {
		if _, exist := set.GetOrInsert(f(a.data[i]), struct{}{}); !exist {
			out.Append(a.data[i])
		}
	}
	return out
}
