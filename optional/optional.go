package optional

type Optional[T any] interface {
	Get() T
	IsNone() bool
}

type None[T any] struct{}

// Get returns the zero value of T.
func (o None[T]) Get() T {
	var zero T
	return zero
}
func (o None[T]) IsNone() bool { return true }

type Some[T any] struct {
	Value T
}

func (o Some[T]) Get() T       { return o.Value }
func (o Some[T]) IsNone() bool { return false }
func (o Some[T]) Some(receiver *T) {
	*receiver = o.Value
}

// Of wraps v as Some when ok, otherwise None.
func Of[T any](v T, ok bool) Optional[T] {
	if ok {
		return Some[T]{Value: v}
	}
	return None[T]{}
}
