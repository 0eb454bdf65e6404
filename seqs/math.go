package seqs

import (
	"iter"

	"facet/constraints"
)

// Sum drains seq and returns the total of its elements.
func Sum[T constraints.Numeric](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Min drains seq and returns its smallest element, or false if the
// sequence is empty.
func Min[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	var min T
	first := true
	for v := range seq {
		if first {
			min = v
			first = false
			continue
		}
		if v < min {
			min = v
		}
	}
	if first {
		var zero T
		return zero, false
	}
	return min, true
}

// Max drains seq and returns its largest element, or false if the
// sequence is empty.
func Max[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	var max T
	first := true
	for v := range seq {
		if first {
			max = v
			first = false
			continue
		}
		if v > max {
			max = v
		}
	}
	if first {
		var zero T
		return zero, false
	}
	return max, true
}
