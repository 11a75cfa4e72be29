package bignat

// Cloner is implemented by types that can produce an independent copy of
// themselves. A clone must share no mutable state with the original.
type Cloner[T any] interface {
	Clone() T
}

// Equaler is implemented by types with a value equality.
type Equaler[T any] interface {
	Equal(T) bool
}

var (
	_ Cloner[Nat]  = Nat{}
	_ Equaler[Nat] = Nat{}
)
