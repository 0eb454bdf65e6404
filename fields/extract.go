package fields

// Extract collects the selected field of every element into a new slice.
func Extract[E, F any](collection []E, field Field[E, F]) []F {
	result := make([]F, 0, len(collection))
	for i := range collection {
		result = append(result, field.Get(&collection[i]))
	}
	return result
}

// ExtractLinked collects the selected field of every element, each linked
// to the element inside collection's backing array. Committing a link
// writes into collection itself.
func ExtractLinked[E, F any](collection []E, field Field[E, F]) []*LinkedField[E, F] {
	result := make([]*LinkedField[E, F], 0, len(collection))
	for i := range collection {
		result = append(result, Link(&collection[i], field))
	}
	return result
}

// ExtractTransform collects fn applied to the selected field of every
// element.
func ExtractTransform[E, F, R any](collection []E, field Field[E, F], fn func(F) R) []R {
	result := make([]R, 0, len(collection))
	for i := range collection {
		result = append(result, fn(field.Get(&collection[i])))
	}
	return result
}

// ExtractOperate collects op applied to each element's selected field and a
// fixed operand. The elements are untouched.
func ExtractOperate[E, F, O any](collection []E, field Field[E, F], operand O, op func(F, O) F) []F {
	result := make([]F, 0, len(collection))
	for i := range collection {
		result = append(result, op(field.Get(&collection[i]), operand))
	}
	return result
}

// ExtractOperateInPlace applies op to each element's selected field and a
// fixed operand, writes every computed value back into its element, and
// returns the computed values.
func ExtractOperateInPlace[E, F, O any](collection []E, field Field[E, F], operand O, op func(F, O) F) []F {
	result := make([]F, 0, len(collection))
	for i := range collection {
		v := op(field.Get(&collection[i]), operand)
		field.Set(&collection[i], v)
		result = append(result, v)
	}
	return result
}

// ExtractOperateTransform is ExtractOperate for operators whose result type
// differs from the field type. Copy only, nothing is written back.
func ExtractOperateTransform[E, F, O, R any](collection []E, field Field[E, F], operand O, op func(F, O) R) []R {
	result := make([]R, 0, len(collection))
	for i := range collection {
		result = append(result, op(field.Get(&collection[i]), operand))
	}
	return result
}
