package sliceutil

// Map transforms a slice of type T to a slice of type R.
func Map[T any, R any](collection []T, transform func(T) R) []R {
	if len(collection) == 0 {
		return []R{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	// Pre-allocate result slice
	res := make([]R, len(collection))
	for i, v := range collection {
		res[i] = transform(v)
	}
	return res
}

// MapInPlace applies the transform to every element, overwriting the
// collection. It returns the collection for chaining.
func MapInPlace[T any](collection []T, transform func(T) T) []T {
	if len(collection) == 0 {
		return collection
	}
	_ = collection[len(collection)-1]

	for i, v := range collection {
		collection[i] = transform(v)
	}
	return collection
}

// Operate computes op(element, operand) for every element and returns the
// results as a new slice. The operand is supplied once and reused for every
// element.
func Operate[T, O any](collection []T, operand O, op func(T, O) T) []T {
	if len(collection) == 0 {
		return []T{}
	}
	_ = collection[len(collection)-1]

	res := make([]T, len(collection))
	for i, v := range collection {
		res[i] = op(v, operand)
	}
	return res
}

// OperateInPlace computes op(element, operand) for every element and writes
// the result back over the element. It returns the collection for chaining.
func OperateInPlace[T, O any](collection []T, operand O, op func(T, O) T) []T {
	if len(collection) == 0 {
		return collection
	}
	_ = collection[len(collection)-1]

	for i, v := range collection {
		collection[i] = op(v, operand)
	}
	return collection
}

// OperateTransform computes op(element, operand) for every element, where
// the result type may differ from the element type.
func OperateTransform[T, O, R any](collection []T, operand O, op func(T, O) R) []R {
	if len(collection) == 0 {
		return []R{}
	}
	_ = collection[len(collection)-1]

	res := make([]R, len(collection))
	for i, v := range collection {
		res[i] = op(v, operand)
	}
	return res
}

// Reduce reduces a slice of type T to a single value of type R.
func Reduce[T any, R any](collection []T, accumulator func(R, T) R, initial R) R {
	if len(collection) == 0 {
		return initial
	}

	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	result := initial
	for _, item := range collection {
		result = accumulator(result, item)
	}
	return result
}
