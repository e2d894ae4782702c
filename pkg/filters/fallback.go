package filters

// Fallback returns a filter replacing the zero value of T with the given
// default. It is the Go rendering of null-coalescing: absent input becomes
// a well-defined value instead of flowing through as a zero.
func Fallback[T comparable](def T) func(T) T {
	var zero T
	return func(v T) T {
		if v == zero {
			return def
		}
		return v
	}
}

// NonNilSlice replaces a nil slice with an empty one, so downstream code
// can range and append without nil checks.
func NonNilSlice[T any](slice []T) []T {
	if slice == nil {
		return []T{}
	}
	return slice
}

// NonNilMap replaces a nil map with an empty one.
func NonNilMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return map[K]V{}
	}
	return m
}
