package filtered

import "fmt"

// Box is the shared wrapper variant. It is created through New or NewWith,
// handed around as a pointer, and every write path (construction, Set,
// SetFilter) routes the incoming value through the active filter exactly
// once. Reads never invoke the filter.
type Box[T any] struct {
	value  T
	filter Filter[T]
}

// New creates a Box whose initial contents are the filtered zero value of T.
// The zero value is never assumed to already satisfy the filter.
func New[T any](f Filter[T]) (*Box[T], error) {
	var zero T
	return NewWith(f, zero)
}

// NewWith creates a Box holding filter(initial). Returns ErrNilFilter if f
// is nil; no instance is created in that case.
func NewWith[T any](f Filter[T], initial T) (*Box[T], error) {
	if f == nil {
		return nil, ErrNilFilter
	}
	return &Box[T]{value: f(initial), filter: f}, nil
}

// MustNew is like New but panics on a nil filter. Intended for package-level
// variables where the filter is a compile-time constant of the program.
func MustNew[T any](f Filter[T]) *Box[T] {
	b, err := New(f)
	if err != nil {
		panic(err)
	}
	return b
}

// MustNewWith is like NewWith but panics on a nil filter.
func MustNewWith[T any](f Filter[T], initial T) *Box[T] {
	b, err := NewWith(f, initial)
	if err != nil {
		panic(err)
	}
	return b
}

// Get returns the current value. No filtering happens on read.
func (b *Box[T]) Get() T {
	return b.value
}

// Set stores filter(v), replacing the current value. Set panics with
// ErrNilFilter on a zero Box that never went through New.
func (b *Box[T]) Set(v T) {
	if b.filter == nil {
		panic(ErrNilFilter)
	}
	b.value = b.filter(v)
}

// Filter returns the active filter.
func (b *Box[T]) Filter() Filter[T] {
	return b.filter
}

// SetFilter replaces the active filter and immediately re-validates the
// current value through the new filter, so the stored value always reflects
// the rule in force. Returns ErrNilFilter, leaving the Box untouched, if f
// is nil. The new value is computed before either field is assigned; a
// panicking filter therefore leaves the Box unchanged.
func (b *Box[T]) SetFilter(f Filter[T]) error {
	if f == nil {
		return ErrNilFilter
	}

	v := f(b.value)
	b.filter = f
	b.value = v
	return nil
}

// String renders the stored value, making Box usable directly in logs and
// format strings.
func (b *Box[T]) String() string {
	return fmt.Sprint(b.value)
}
