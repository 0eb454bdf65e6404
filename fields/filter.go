package fields

// ==========================================
//  Unary predicate
// ==========================================

// Filter returns the elements whose selected field satisfies the predicate.
func Filter[E, F any](collection []E, field Field[E, F], predicate func(F) bool) []E {
	result := make([]E, 0, len(collection)/2)
	for i := range collection {
		if predicate(field.Get(&collection[i])) {
			result = append(result, collection[i])
		}
	}
	return result
}

// Reject returns the elements whose selected field fails the predicate.
func Reject[E, F any](collection []E, field Field[E, F], predicate func(F) bool) []E {
	result := make([]E, 0, len(collection)/2)
	for i := range collection {
		if !predicate(field.Get(&collection[i])) {
			result = append(result, collection[i])
		}
	}
	return result
}

// FilterInPlace keeps only the elements whose selected field satisfies the
// predicate. It modifies the underlying array, returns the trimmed slice
// and the number of elements removed.
func FilterInPlace[E, F any](collection []E, field Field[E, F], predicate func(F) bool) ([]E, int) {
	return discardInPlace(collection, func(e *E) bool {
		return !predicate(field.Get(e))
	})
}

// RejectInPlace removes the elements whose selected field satisfies the
// predicate. It modifies the underlying array, returns the trimmed slice
// and the number of elements removed.
func RejectInPlace[E, F any](collection []E, field Field[E, F], predicate func(F) bool) ([]E, int) {
	return discardInPlace(collection, func(e *E) bool {
		return predicate(field.Get(e))
	})
}

// ==========================================
//  Binary predicate against a fixed operand
// ==========================================

// FilterCmp returns the elements whose selected field satisfies the
// predicate against a fixed operand.
func FilterCmp[E, F, O any](collection []E, field Field[E, F], operand O, predicate func(F, O) bool) []E {
	return Filter(collection, field, func(v F) bool { return predicate(v, operand) })
}

// RejectCmp returns the elements whose selected field fails the predicate
// against a fixed operand.
func RejectCmp[E, F, O any](collection []E, field Field[E, F], operand O, predicate func(F, O) bool) []E {
	return Reject(collection, field, func(v F) bool { return predicate(v, operand) })
}

// FilterCmpInPlace is FilterCmp on the underlying array, returning the
// trimmed slice and the number of elements removed.
func FilterCmpInPlace[E, F, O any](collection []E, field Field[E, F], operand O, predicate func(F, O) bool) ([]E, int) {
	return FilterInPlace(collection, field, func(v F) bool { return predicate(v, operand) })
}

// RejectCmpInPlace is RejectCmp on the underlying array, returning the
// trimmed slice and the number of elements removed.
func RejectCmpInPlace[E, F, O any](collection []E, field Field[E, F], operand O, predicate func(F, O) bool) ([]E, int) {
	return RejectInPlace(collection, field, func(v F) bool { return predicate(v, operand) })
}

// ==========================================
//  Equality against a fixed value
// ==========================================

// FilterEq returns the elements whose selected field equals value.
func FilterEq[E any, F comparable](collection []E, field Field[E, F], value F) []E {
	return Filter(collection, field, func(v F) bool { return v == value })
}

// RejectEq returns the elements whose selected field differs from value.
func RejectEq[E any, F comparable](collection []E, field Field[E, F], value F) []E {
	return Reject(collection, field, func(v F) bool { return v == value })
}

// FilterEqInPlace is FilterEq on the underlying array, returning the
// trimmed slice and the number of elements removed.
func FilterEqInPlace[E any, F comparable](collection []E, field Field[E, F], value F) ([]E, int) {
	return FilterInPlace(collection, field, func(v F) bool { return v == value })
}

// RejectEqInPlace is RejectEq on the underlying array, returning the
// trimmed slice and the number of elements removed.
func RejectEqInPlace[E any, F comparable](collection []E, field Field[E, F], value F) ([]E, int) {
	return RejectInPlace(collection, field, func(v F) bool { return v == value })
}

// discardInPlace compacts collection by dropping every element drop reports
// true for, preserving order. Shared core of the in-place family.
func discardInPlace[E any](collection []E, drop func(*E) bool) ([]E, int) {
	if len(collection) == 0 {
		return collection, 0
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	idx := 0
	for i := range collection {
		if !drop(&collection[i]) {
			if i != idx {
				collection[idx] = collection[i]
			}
			idx++
		}
	}

	// Zero out removed elements for GC
	clear(collection[idx:])
	return collection[:idx], len(collection) - idx
}
