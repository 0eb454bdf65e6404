package numutil

import (
	"unsafe"

	"facet/constraints"
)

// IsThisRight reports whether a and b add up to the expected sum.
func IsThisRight[T constraints.Numeric](a, b, expectedSum T) bool {
	return a+b == expectedSum
}

// InRange reports whether value lies within [lower, upper], bounds included.
func InRange[T constraints.Numeric](value, lower, upper T) bool {
	return value >= lower && value <= upper
}

// InRangeExclusive reports whether value lies within (lower, upper), bounds
// excluded.
func InRangeExclusive[T constraints.Numeric](value, lower, upper T) bool {
	return value > lower && value < upper
}

// ApproxEqual reports whether two floating-point values are equal within a
// tolerance blended from the type's machine epsilon: an absolute floor of
// eps*100 and a relative component of eps*10 scaled by the larger operand
// magnitude.
func ApproxEqual[T constraints.Float](a, b T) bool {
	eps := epsilon[T]()

	threshold := max(eps*100, eps*10*max(abs(a), abs(b)))
	return InRange(a, b-threshold, b+threshold)
}

// IsDivisibleBy reports whether numerator divides evenly by denominator.
// A zero denominator panics with the usual integer-division runtime error.
func IsDivisibleBy[T constraints.Integral](numerator, denominator T) bool {
	return numerator%denominator == 0
}

// Quotient returns value/factor when factor divides value evenly, and zero
// otherwise. The zero return doubles as the "not divisible" signal, so
// callers that need to distinguish it from a real zero quotient should test
// IsDivisibleBy first. A zero factor panics.
func Quotient[T constraints.Integral](value, factor T) T {
	if !IsDivisibleBy(value, factor) {
		return 0
	}
	return value / factor
}

func abs[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// epsilon returns the machine epsilon of T: the gap between 1 and the next
// representable value.
func epsilon[T constraints.Float]() T {
	if unsafe.Sizeof(T(0)) == 4 {
		return T(1.1920928955078125e-07) // 2^-23
	}
	return T(2.220446049250313e-16) // 2^-52
}
