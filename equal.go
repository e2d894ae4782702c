package filtered

import "hash/maphash"

// Holder is the read side shared by both wrapper variants. *Box[T] and
// Value[T] satisfy it.
type Holder[T any] interface {
	Get() T
}

// Equal reports whether two wrappers hold equal values under T's native
// equality. Filters are deliberately excluded: two wrappers with different
// rules but the same resulting value are equal.
func Equal[T comparable](a, b Holder[T]) bool {
	return a.Get() == b.Get()
}

// EqualOf reports whether a wrapper's value equals a bare value of T. It is
// the explicit form of "compare the wrapper to an unwrapped value".
func EqualOf[T comparable](h Holder[T], v T) bool {
	return h.Get() == v
}

// EqualFunc is Equal for types that are not comparable, using the supplied
// equality function.
func EqualFunc[T any](a, b Holder[T], eq func(T, T) bool) bool {
	return eq(a.Get(), b.Get())
}

// Hash returns a hash of the stored value, and only the value: consistent
// with Equal, the filter contributes nothing. Wrappers that compare equal
// hash identically under the same seed.
func Hash[T comparable](seed maphash.Seed, h Holder[T]) uint64 {
	return maphash.Comparable(seed, h.Get())
}
