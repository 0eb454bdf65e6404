package sliceutil

// Union returns the union of two slices: concatenation order, duplicates
// removed, first occurrence kept.
func Union[T comparable](a, b []T) []T {
	result := make([]T, 0, len(a)+len(b))

	seen := make(map[T]struct{}, len(a)+len(b))
	// BCE hint: avoid bounds check in loop
	if len(a) > 0 {
		_ = a[len(a)-1]
		for _, v := range a {
			if _, alreadyAdded := seen[v]; !alreadyAdded {
				result = append(result, v)
				seen[v] = struct{}{}
			}
		}
	}

	if len(b) > 0 {
		_ = b[len(b)-1]
		for _, v := range b {
			if _, alreadyAdded := seen[v]; !alreadyAdded {
				result = append(result, v)
				seen[v] = struct{}{}
			}
		}
	}
	return result
}

// UnionFunc is Union for types without built-in equality, using eq to
// decide whether two elements are the same. Quadratic in the result size,
// so unsuitable for very large inputs.
func UnionFunc[T any](a, b []T, eq func(T, T) bool) []T {
	result := make([]T, 0, len(a)+len(b))
	for _, v := range a {
		if !containsEq(result, v, eq) {
			result = append(result, v)
		}
	}
	for _, v := range b {
		if !containsEq(result, v, eq) {
			result = append(result, v)
		}
	}
	return result
}

// Intersection returns the elements of a that also occur in b, in a's
// order, deduplicated.
func Intersection[T comparable](a, b []T) []T {
	if len(a) == 0 || len(b) == 0 {
		return []T{}
	}
	// BCE hint: avoid bounds check in loop
	_ = b[len(b)-1]
	mapB := make(map[T]struct{}, len(b))
	for _, v := range b {
		mapB[v] = struct{}{}
	}

	// The result is at most as long as the smaller input.
	capacity := min(len(b), len(a))
	result := make([]T, 0, capacity)
	_ = a[len(a)-1]
	for _, v := range a {
		if _, found := mapB[v]; found {
			result = append(result, v)
			delete(mapB, v) // ensure uniqueness in result
		}
	}
	return result
}

// IntersectionFunc is Intersection with a caller-supplied equality
// predicate. Quadratic, so unsuitable for very large inputs.
func IntersectionFunc[T any](a, b []T, eq func(T, T) bool) []T {
	if len(a) == 0 || len(b) == 0 {
		return []T{}
	}

	result := make([]T, 0, min(len(a), len(b)))
	for _, v := range a {
		if containsEq(b, v, eq) && !containsEq(result, v, eq) {
			result = append(result, v)
		}
	}
	return result
}

// Difference returns the elements of a that are absent from b, in a's
// order, deduplicated.
func Difference[T comparable](a, b []T) []T {
	if len(a) == 0 {
		return []T{}
	}

	// The map eventually holds every unique element of b plus the unique
	// elements of a that reach the result, so len(a)+len(b) avoids resizing.
	exclude := make(map[T]struct{}, len(a)+len(b))
	if len(b) > 0 {
		_ = b[len(b)-1]
		for _, v := range b {
			exclude[v] = struct{}{}
		}
	}

	result := make([]T, 0, len(a))
	_ = a[len(a)-1]
	for _, v := range a {
		if _, exists := exclude[v]; !exists {
			result = append(result, v)
			exclude[v] = struct{}{}
		}
	}
	return result
}

// DifferenceFunc is Difference with a caller-supplied equality predicate.
// Quadratic, so unsuitable for very large inputs.
func DifferenceFunc[T any](a, b []T, eq func(T, T) bool) []T {
	if len(a) == 0 {
		return []T{}
	}

	result := make([]T, 0, len(a))
	for _, v := range a {
		if !containsEq(b, v, eq) && !containsEq(result, v, eq) {
			result = append(result, v)
		}
	}
	return result
}

// SymmetricDifference returns the elements that occur in exactly one of the
// two slices: the a-only elements first, then the b-only elements, each
// group in input order, deduplicated.
func SymmetricDifference[T comparable](a, b []T) []T {
	if len(a) == 0 && len(b) == 0 {
		return []T{}
	}

	// Map to track state of elements.
	// true: present in b, candidate for result (if not found in a).
	// false: seen in a (either intersection or already added to result).
	bMap := make(map[T]bool, len(a)+len(b))

	if len(b) > 0 {
		_ = b[len(b)-1]
		for _, v := range b {
			bMap[v] = true
		}
	}

	result := make([]T, 0, len(a)+len(b))

	if len(a) > 0 {
		_ = a[len(a)-1]
		for _, v := range a {
			if inB, ok := bMap[v]; ok {
				if inB {
					// Found in B (Intersection). Mark as seen/exclude.
					bMap[v] = false
				}
			} else {
				// Not in B. Unique to A.
				result = append(result, v)
				// Mark as seen so duplicates in A are skipped
				bMap[v] = false
			}
		}
	}

	if len(b) > 0 {
		_ = b[len(b)-1]
		for _, v := range b {
			if keep, ok := bMap[v]; ok && keep {
				result = append(result, v)
				bMap[v] = false
			}
		}
	}

	return result
}

// SymmetricDifferenceFunc is SymmetricDifference with a caller-supplied
// equality predicate. Quadratic, so unsuitable for very large inputs.
func SymmetricDifferenceFunc[T any](a, b []T, eq func(T, T) bool) []T {
	onlyA := DifferenceFunc(a, b, eq)
	onlyB := DifferenceFunc(b, a, eq)
	return append(onlyA, onlyB...)
}

// Unique returns a copy of the collection with duplicates removed,
// preserving the order of first occurrence.
func Unique[T comparable](collection []T) []T {
	if len(collection) == 0 {
		return []T{}
	}
	_ = collection[len(collection)-1]

	seen := make(map[T]struct{}, len(collection))
	result := make([]T, 0, len(collection))
	for _, v := range collection {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	return result
}

// UniqueFunc is Unique with a caller-supplied equality predicate.
// Quadratic, so unsuitable for very large inputs.
func UniqueFunc[T any](collection []T, eq func(T, T) bool) []T {
	if len(collection) == 0 {
		return []T{}
	}

	result := make([]T, 0, len(collection))
	for _, v := range collection {
		if !containsEq(result, v, eq) {
			result = append(result, v)
		}
	}
	return result
}

// UniqueInPlace removes duplicate elements from the slice in-place,
// preserving the order of first occurrence. It modifies the underlying
// array, returns the trimmed slice and the number of duplicates removed.
func UniqueInPlace[T comparable](collection []T) ([]T, int) {
	if len(collection) == 0 {
		return collection, 0
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	seen := make(map[T]struct{}, len(collection))
	idx := 0
	for i, v := range collection {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			if i != idx {
				collection[idx] = v
			}
			idx++
		}
	}

	// Zero out remaining elements for GC
	clear(collection[idx:])
	return collection[:idx], len(collection) - idx
}

// UniqueFuncInPlace is UniqueInPlace with a caller-supplied equality
// predicate. Quadratic, so unsuitable for very large inputs.
func UniqueFuncInPlace[T any](collection []T, eq func(T, T) bool) ([]T, int) {
	if len(collection) == 0 {
		return collection, 0
	}
	_ = collection[len(collection)-1]

	idx := 0
	for i, v := range collection {
		if !containsEq(collection[:idx], v, eq) {
			if i != idx {
				collection[idx] = v
			}
			idx++
		}
	}

	clear(collection[idx:])
	return collection[:idx], len(collection) - idx
}

// containsEq reports whether target equals any element under eq.
func containsEq[T any](collection []T, target T, eq func(T, T) bool) bool {
	for _, v := range collection {
		if eq(v, target) {
			return true
		}
	}
	return false
}
