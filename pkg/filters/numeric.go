package filters

import "math"

// Numeric represents numeric types that support ordering and arithmetic.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Signed represents signed numeric types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Float represents floating-point numeric types.
type Float interface {
	~float32 | ~float64
}

// Clamp returns a filter constraining values to the range [min, max].
func Clamp[T Numeric](min, max T) func(T) T {
	return func(v T) T {
		if v < min {
			return min
		}
		if v > max {
			return max
		}
		return v
	}
}

// AtLeast returns a filter that raises values below min to min.
func AtLeast[T Numeric](min T) func(T) T {
	return func(v T) T {
		if v < min {
			return min
		}
		return v
	}
}

// AtMost returns a filter that lowers values above max to max.
func AtMost[T Numeric](max T) func(T) T {
	return func(v T) T {
		if v > max {
			return max
		}
		return v
	}
}

// NonNegative replaces negative values with zero.
func NonNegative[T Signed](v T) T {
	if v < 0 {
		return 0
	}
	return v
}

// Abs replaces a value with its absolute value.
func Abs[T Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// NonZero returns a filter replacing zero with the given fallback.
func NonZero[T Numeric](fallback T) func(T) T {
	return func(v T) T {
		if v == 0 {
			return fallback
		}
		return v
	}
}

// RoundTo returns a filter rounding floats to the given number of decimal
// places. Negative places are treated as zero.
func RoundTo[T Float](places int) func(T) T {
	if places < 0 {
		places = 0
	}
	multiplier := math.Pow(10, float64(places))

	return func(v T) T {
		return T(math.Round(float64(v)*multiplier) / multiplier)
	}
}
