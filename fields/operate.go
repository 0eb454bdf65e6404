package fields

// Transform returns a copy of the collection with each element's selected
// field rewritten by fn. All other fields are carried over unchanged.
func Transform[E, F any](collection []E, field Field[E, F], fn func(F) F) []E {
	result := make([]E, len(collection))
	copy(result, collection)
	for i := range result {
		field.Update(&result[i], fn)
	}
	return result
}

// TransformInPlace rewrites each element's selected field by fn and returns
// the collection.
func TransformInPlace[E, F any](collection []E, field Field[E, F], fn func(F) F) []E {
	for i := range collection {
		field.Update(&collection[i], fn)
	}
	return collection
}

// Operate returns a copy of the collection with each element's selected
// field rewritten by op against a fixed operand.
func Operate[E, F, O any](collection []E, field Field[E, F], operand O, op func(F, O) F) []E {
	result := make([]E, len(collection))
	copy(result, collection)
	for i := range result {
		field.Set(&result[i], op(field.Get(&result[i]), operand))
	}
	return result
}

// OperateInPlace rewrites each element's selected field by op against a
// fixed operand and returns the collection.
func OperateInPlace[E, F, O any](collection []E, field Field[E, F], operand O, op func(F, O) F) []E {
	for i := range collection {
		field.Set(&collection[i], op(field.Get(&collection[i]), operand))
	}
	return collection
}
