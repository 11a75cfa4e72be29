package bignat

// Option holds either a value of type T or nothing. The zero value is None.
//
// Options are values: replacing the contents means building a new Option.
type Option[T any] struct {
	value T
	some  bool
}

// Some constructs an option which holds a value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None constructs an empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the value and whether it is present. The value is the one
// stored in o, not a clone; callers that need an independent copy should
// clone it themselves.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// MustGet returns the value, or panics if the option is empty.
func (o Option[T]) MustGet() T {
	if !o.some {
		panic("bignat: get of empty option")
	}
	return o.value
}

// Or returns the value, or def if the option is empty.
func (o Option[T]) Or(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// CloneOption returns an option holding a clone of o's value, or None if o
// is empty. The original value is only read.
func CloneOption[T Cloner[T]](o Option[T]) Option[T] {
	if !o.some {
		return None[T]()
	}
	return Some(o.value.Clone())
}

// EqualOption reports whether a and b are both empty, or both hold equal
// values.
func EqualOption[T Equaler[T]](a, b Option[T]) bool {
	if a.some != b.some {
		return false
	}
	if !a.some {
		return true
	}
	return a.value.Equal(b.value)
}

// MapOption transforms the value if present.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(fn(o.value))
}
