// Package filters is a catalog of ready-made filter functions for the
// filtered wrappers. Every entry conforms to the func(T) T shape the
// wrappers store: either directly (Trim, StripHTML, NonNegative) or as a
// constructor whose parameters fix the rule and whose result is the filter
// (Clamp, MaxRunes, ClampTime).
//
// The catalog is grouped by the type it operates on:
//
//   - Strings – trimming, case conversion, whitespace normalisation and
//     character-class filtering.
//
//   - Numeric – generic clamping, rounding and sign constraints over any
//     integer or float type.
//
//   - Time – bounding and truncating time.Time values.
//
//   - Format – normalisation of e-mail addresses, URLs, UUIDs and phone
//     digits.
//
//   - Security – defensive routines that escape or strip dangerous content.
//
//   - Collections and fallbacks – slice cleanup and zero-value coalescing.
//
// Filters compose by ordinary chaining; filtered.Chain builds a single
// filter out of several catalog entries:
//
//	name := filtered.MustNewWith(filtered.Chain(
//		filters.Trim,
//		filters.CollapseWhitespace,
//		filters.MaxRunes(64),
//	), rawInput)
//
// Every entry is a pure, stateless function that always returns a safe
// result rather than an error, falling back to the original input when a
// value cannot be meaningfully transformed. All entries are safe for
// concurrent use.
package filters
