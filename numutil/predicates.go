package numutil

import "facet/constraints"

// IsItself reports whether value compares equal to itself. Every number
// does, except floating-point NaN, which makes this a NaN probe for float
// types.
func IsItself[T constraints.Numeric](value T) bool {
	return value == value
}

// IsEven reports whether value is divisible by two.
func IsEven[T constraints.Integral](value T) bool {
	return value%2 == 0
}

// IsOdd reports whether value is not divisible by two.
func IsOdd[T constraints.Integral](value T) bool {
	return value%2 != 0
}

// IsPositive reports whether value is greater than zero.
func IsPositive[T constraints.Numeric](value T) bool {
	return value > 0
}

// IsNegative reports whether value is less than zero.
func IsNegative[T constraints.Numeric](value T) bool {
	return value < 0
}

// IsPrime reports whether value is prime, by trial division against 2, 3
// and the 6k±1 candidates up to the square root.
func IsPrime[T constraints.Integral](value T) bool {
	if value <= 1 {
		return false
	}
	if value <= 3 {
		return true
	}
	if value%2 == 0 || value%3 == 0 {
		return false
	}

	v := int64(value)
	for i := int64(5); i*i <= v; i += 6 {
		if v%i == 0 || v%(i+2) == 0 {
			return false
		}
	}
	return true
}

// IsComposite reports whether value is greater than one and not prime.
func IsComposite[T constraints.Integral](value T) bool {
	return value > 1 && !IsPrime(value)
}
