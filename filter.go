package filtered

import "strconv"

// Filter transforms any input into a valid value of the same type. Filters
// are first-class values: they can be stored, passed around, swapped on a
// live wrapper with SetFilter, and composed with Chain.
//
// A filter should be idempotent, meaning applying it to its own output is a
// no-op, so that the stored value is a fixed point of the active filter.
// The wrappers do not verify idempotence; they only guarantee exactly one
// application per write.
type Filter[T any] func(T) T

// Chain composes filters into a single filter that applies each step from
// left to right. Chain with no arguments returns the identity filter.
//
// Chain panics on a nil step so the mistake surfaces where the chain is
// defined rather than on the first write.
func Chain[T any](fns ...Filter[T]) Filter[T] {
	for i, fn := range fns {
		if fn == nil {
			panic("filtered: Chain step " + strconv.Itoa(i) + " is nil")
		}
	}

	if len(fns) == 1 {
		return fns[0]
	}

	return func(v T) T {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}
