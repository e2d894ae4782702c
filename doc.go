// Package filtered provides generic value wrappers that guarantee the stored
// value has always passed through a caller-supplied filter function.
//
// A filter is an ordinary function from T to T that transforms any input into
// a valid value: clamping a number into range, trimming a string, stripping
// HTML. The wrappers apply the active filter on every write path (at
// construction, on every Set, and when the filter itself is replaced) so the
// stored value is always the result of exactly one application of the current
// filter. Reads are filter-free and cheap.
//
// Two wrapper variants share an identical contract:
//
//   - Box is the shared variant. New returns *Box, so multiple holders can
//     observe the same cell.
//
//   - Value is the inline variant. Make returns it by value; copying a Value
//     copies both the stored value and the filter.
//
// Basic Usage:
//
//	age := filtered.MustNewWith(filters.Clamp(0, 130), -5)
//	age.Get() // 0
//
//	age.Set(200)
//	age.Get() // 130
//
// Replacing the filter immediately re-validates the current value under the
// new rule:
//
//	age.SetFilter(filters.Clamp(18, 130)) // value stays 130
//	age.Set(10)                           // stored as 18
//
// Reusable Definitions:
//
// Def bakes a filter into a factory so a validated type can be named once and
// constructed anywhere without repeating the filter:
//
//	var Username = filtered.MustDefine(
//		filters.Trim,
//		filters.ToLower,
//		filters.MaxRunes(32),
//	)
//
//	u := Username.New("  John ") // holds "john"
//
// Equality and hashing consider only the stored value; the filter is excluded.
// Two wrappers with different filters but the same resulting value compare
// equal. See Equal, EqualOf, EqualFunc and Hash.
//
// # Error handling
//
// A wrapper cannot exist without a filter. Constructors and SetFilter return
// ErrNilFilter when given a nil filter and leave no usable instance / no
// altered state behind. Filters themselves never return errors; a filter that
// must reject an input outright may panic, and the panic propagates through
// the write path unmodified with the previous valid value retained.
//
// # Concurrency
//
// Wrappers are plain data holders with no internal locking. Use external
// synchronization when sharing a Box across goroutines; concurrent Set and
// SetFilter without it is a data race.
package filtered
