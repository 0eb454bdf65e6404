package numutil

import "facet/constraints"

// Add returns the sum of the two values.
func Add[T constraints.Numeric](a, b T) T {
	return a + b
}

// Square returns the value multiplied by itself.
func Square[T constraints.Numeric](value T) T {
	return value * value
}

// Average returns the arithmetic mean of the container as a float32,
// accumulating in float32 regardless of the element type. An empty
// container averages to zero.
func Average[S ~[]E, E constraints.Numeric](collection S) float32 {
	if len(collection) == 0 {
		return 0
	}
	_ = collection[len(collection)-1] // BCE hint

	var sum float32
	for _, v := range collection {
		sum += float32(v)
	}
	return sum / float32(len(collection))
}

// AverageType returns the arithmetic mean of the container in the element
// type itself. For integer types both the accumulation and the final
// division stay integral, so the result truncates. An empty container
// averages to zero.
func AverageType[S ~[]E, E constraints.Numeric](collection S) E {
	if len(collection) == 0 {
		return 0
	}
	_ = collection[len(collection)-1]

	var sum E
	for _, v := range collection {
		sum += v
	}
	return sum / E(len(collection))
}
