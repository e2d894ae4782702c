package filtered

// Def is a reusable definition of a validated type: a filter chain validated
// once and baked into a factory. Name the rule once at package level and
// construct wrappers anywhere without repeating it; every construction path
// through a Def routes through the stored filter, so no bypass exists.
//
//	var Age = filtered.MustDefine(filters.Clamp(0, 130))
//
//	a := Age.New(-5)  // *Box[int] holding 0
//	v := Age.Make(200) // Value[int] holding 130
type Def[T any] struct {
	filter Filter[T]
}

// Define validates and chains the given filters into a Def. Returns
// ErrNilFilter if no filters are given or any of them is nil.
func Define[T any](fns ...Filter[T]) (Def[T], error) {
	if len(fns) == 0 {
		return Def[T]{}, ErrNilFilter
	}
	for _, fn := range fns {
		if fn == nil {
			return Def[T]{}, ErrNilFilter
		}
	}
	return Def[T]{filter: Chain(fns...)}, nil
}

// MustDefine is like Define but panics on error. Intended for package-level
// definitions.
func MustDefine[T any](fns ...Filter[T]) Def[T] {
	d, err := Define(fns...)
	if err != nil {
		panic(err)
	}
	return d
}

// Filter returns the definition's filter chain.
func (d Def[T]) Filter() Filter[T] {
	return d.filter
}

// New returns a shared wrapper holding the filtered initial value.
func (d Def[T]) New(initial T) *Box[T] {
	return MustNewWith(d.filter, initial)
}

// NewZero returns a shared wrapper holding the filtered zero value of T.
func (d Def[T]) NewZero() *Box[T] {
	return MustNew[T](d.filter)
}

// Make returns an inline wrapper holding the filtered initial value.
func (d Def[T]) Make(initial T) Value[T] {
	return MustMakeWith(d.filter, initial)
}

// MakeZero returns an inline wrapper holding the filtered zero value of T.
func (d Def[T]) MakeZero() Value[T] {
	return MustMake[T](d.filter)
}
