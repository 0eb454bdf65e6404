package sliceutil

// ==========================================
//  Concatenation
// ==========================================

// Concat joins any number of slices into one new slice, preserving order.
func Concat[T any](collections ...[]T) []T {
	totalLen := 0
	for _, c := range collections {
		totalLen += len(c)
	}

	result := make([]T, 0, totalLen)
	for _, c := range collections {
		result = append(result, c...)
	}
	return result
}

// ==========================================
//  Erasure
// ==========================================

// Erase returns a copy of the collection with the element at index removed.
// An out-of-range index yields an unedited copy.
func Erase[T any](collection []T, index int) []T {
	if index < 0 || index >= len(collection) {
		result := make([]T, len(collection))
		copy(result, collection)
		return result
	}

	result := make([]T, 0, len(collection)-1)
	result = append(result, collection[:index]...)
	result = append(result, collection[index+1:]...)
	return result
}

// EraseInPlace removes the element at index from the slice, shifting the
// tail left. It modifies the underlying array and returns the trimmed
// slice. An out-of-range index leaves the slice untouched.
func EraseInPlace[T any](collection []T, index int) []T {
	if index < 0 || index >= len(collection) {
		return collection
	}

	copy(collection[index:], collection[index+1:])

	// Zero out the vacated element for GC
	clear(collection[len(collection)-1:])
	return collection[:len(collection)-1]
}

// ==========================================
//  Distribution
// ==========================================

// Distribute splits the collection into count contiguous chunks, preserving
// order, so that concatenating the chunks reproduces the input. When the
// length does not divide evenly the leading chunks carry one extra element.
// With forceEqual set, trailing elements are dropped instead so that every
// chunk has the same size.
//
// A count below two yields a single chunk holding the whole input. Each
// chunk is a fresh copy, never a view of the input.
func Distribute[T any](collection []T, count int, forceEqual bool) [][]T {
	if count <= 1 {
		chunk := make([]T, len(collection))
		copy(chunk, collection)
		return [][]T{chunk}
	}

	n := len(collection)
	if forceEqual {
		n -= n % count
	}

	base := n / count
	extra := n % count

	result := make([][]T, 0, count)
	offset := 0
	for i := 0; i < count; i++ {
		size := base
		if i < extra {
			size++
		}

		chunk := make([]T, size)
		copy(chunk, collection[offset:offset+size])
		result = append(result, chunk)
		offset += size
	}
	return result
}
