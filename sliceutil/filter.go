package sliceutil

// ==========================================
//  Unary predicate
// ==========================================

// Filter returns the elements for which the predicate is true.
func Filter[T any](collection []T, predicate func(T) bool) []T {
	if len(collection) == 0 {
		return []T{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	// Heuristic pre-allocation of capacity
	res := make([]T, 0, len(collection)/2)
	for _, v := range collection {
		if predicate(v) {
			res = append(res, v)
		}
	}
	return res
}

// Reject returns the elements for which the predicate is false.
func Reject[T any](collection []T, predicate func(T) bool) []T {
	if len(collection) == 0 {
		return []T{}
	}
	_ = collection[len(collection)-1]

	res := make([]T, 0, len(collection)/2)
	for _, v := range collection {
		if !predicate(v) {
			res = append(res, v)
		}
	}
	return res
}

// FilterInPlace keeps the elements for which the predicate is true without
// allocating. It modifies the underlying array, returns the trimmed slice
// and the number of elements removed.
func FilterInPlace[T any](collection []T, predicate func(T) bool) ([]T, int) {
	return discardInPlace(collection, func(v T) bool { return !predicate(v) })
}

// RejectInPlace removes the elements for which the predicate is true.
// It modifies the underlying array, returns the trimmed slice and the
// number of elements removed.
func RejectInPlace[T any](collection []T, predicate func(T) bool) ([]T, int) {
	return discardInPlace(collection, predicate)
}

// ==========================================
//  Binary predicate against a fixed operand
// ==========================================

// FilterCmp returns the elements for which predicate(element, operand) is
// true. The operand is supplied once and reused for every element.
func FilterCmp[T, O any](collection []T, operand O, predicate func(T, O) bool) []T {
	return Filter(collection, func(v T) bool { return predicate(v, operand) })
}

// RejectCmp returns the elements for which predicate(element, operand) is
// false.
func RejectCmp[T, O any](collection []T, operand O, predicate func(T, O) bool) []T {
	return Reject(collection, func(v T) bool { return predicate(v, operand) })
}

// FilterCmpInPlace keeps the elements for which predicate(element, operand)
// is true, compacting the underlying array. Returns the trimmed slice and
// the number of elements removed.
func FilterCmpInPlace[T, O any](collection []T, operand O, predicate func(T, O) bool) ([]T, int) {
	return discardInPlace(collection, func(v T) bool { return !predicate(v, operand) })
}

// RejectCmpInPlace removes the elements for which predicate(element,
// operand) is true, compacting the underlying array. Returns the trimmed
// slice and the number of elements removed.
func RejectCmpInPlace[T, O any](collection []T, operand O, predicate func(T, O) bool) ([]T, int) {
	return discardInPlace(collection, func(v T) bool { return predicate(v, operand) })
}

// ==========================================
//  Equality against a fixed value
// ==========================================

// FilterEq returns the elements equal to value.
func FilterEq[T comparable](collection []T, value T) []T {
	return Filter(collection, func(v T) bool { return v == value })
}

// RejectEq returns the elements not equal to value.
func RejectEq[T comparable](collection []T, value T) []T {
	return Reject(collection, func(v T) bool { return v == value })
}

// FilterEqInPlace keeps the elements equal to value, compacting the
// underlying array. Returns the trimmed slice and the number of elements
// removed.
func FilterEqInPlace[T comparable](collection []T, value T) ([]T, int) {
	return discardInPlace(collection, func(v T) bool { return v != value })
}

// RejectEqInPlace removes the elements equal to value, compacting the
// underlying array. Returns the trimmed slice and the number of elements
// removed.
func RejectEqInPlace[T comparable](collection []T, value T) ([]T, int) {
	return discardInPlace(collection, func(v T) bool { return v == value })
}

// ==========================================
//  Partition
// ==========================================

// Partition splits the collection into the elements that satisfy the
// predicate and those that do not, preserving relative order in both
// halves. Two passes, so both results are allocated exactly once.
func Partition[T any](collection []T, predicate func(T) bool) (matched, unmatched []T) {
	if len(collection) == 0 {
		return []T{}, []T{}
	}
	_ = collection[len(collection)-1]

	matchCount := 0
	for _, v := range collection {
		if predicate(v) {
			matchCount++
		}
	}

	matched = make([]T, 0, matchCount)
	unmatched = make([]T, 0, len(collection)-matchCount)
	for _, v := range collection {
		if predicate(v) {
			matched = append(matched, v)
		} else {
			unmatched = append(unmatched, v)
		}
	}
	return matched, unmatched
}

// discardInPlace drops the elements for which drop is true, keeping the
// rest in order. The shared core of the *InPlace filtering variants.
func discardInPlace[T any](collection []T, drop func(T) bool) ([]T, int) {
	if len(collection) == 0 {
		return collection, 0
	}
	_ = collection[len(collection)-1]

	idx := 0
	for i, v := range collection {
		if !drop(v) {
			if i != idx {
				collection[idx] = v
			}
			idx++
		}
	}

	// allow GC to reclaim memory
	clear(collection[idx:])

	return collection[:idx], len(collection) - idx
}
