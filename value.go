package filtered

import "fmt"

// Value is the inline wrapper variant: a copyable cell with the same
// contract as Box. Assigning a Value copies both the stored value and the
// filter, after which the two copies evolve independently.
//
// The zero Value has no filter and is not usable; Make is the only valid
// way to obtain one. Set on a zero Value panics with ErrNilFilter.
type Value[T any] struct {
	value  T
	filter Filter[T]
}

// Make creates a Value whose initial contents are the filtered zero value
// of T.
func Make[T any](f Filter[T]) (Value[T], error) {
	var zero T
	return MakeWith(f, zero)
}

// MakeWith creates a Value holding filter(initial). Returns ErrNilFilter if
// f is nil. The filtered value is computed before the struct is formed, so
// construction never goes through a partially-initialized cell.
func MakeWith[T any](f Filter[T], initial T) (Value[T], error) {
	if f == nil {
		return Value[T]{}, ErrNilFilter
	}
	return Value[T]{value: f(initial), filter: f}, nil
}

// MustMake is like Make but panics on a nil filter.
func MustMake[T any](f Filter[T]) Value[T] {
	v, err := Make(f)
	if err != nil {
		panic(err)
	}
	return v
}

// MustMakeWith is like MakeWith but panics on a nil filter.
func MustMakeWith[T any](f Filter[T], initial T) Value[T] {
	v, err := MakeWith(f, initial)
	if err != nil {
		panic(err)
	}
	return v
}

// Get returns the current value. No filtering happens on read.
func (v Value[T]) Get() T {
	return v.value
}

// Set stores filter(x), replacing the current value. Set panics with
// ErrNilFilter when called on a zero Value that never went through Make.
func (v *Value[T]) Set(x T) {
	if v.filter == nil {
		panic(ErrNilFilter)
	}
	v.value = v.filter(x)
}

// Filter returns the active filter.
func (v Value[T]) Filter() Filter[T] {
	return v.filter
}

// SetFilter replaces the active filter and immediately re-validates the
// current value through the new filter. Returns ErrNilFilter, leaving the
// cell untouched, if f is nil.
func (v *Value[T]) SetFilter(f Filter[T]) error {
	if f == nil {
		return ErrNilFilter
	}

	x := f(v.value)
	v.filter = f
	v.value = x
	return nil
}

// String renders the stored value.
func (v Value[T]) String() string {
	return fmt.Sprint(v.value)
}
