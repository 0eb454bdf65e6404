package fields

// Compare reports whether the selected fields of two elements hold the same
// value. The element types may differ as long as the field type is shared.
func Compare[E1, E2 any, F comparable](a *E1, fa Field[E1, F], b *E2, fb Field[E2, F]) bool {
	return fa.Get(a) == fb.Get(b)
}

// CompareFunc is Compare for fields of two unrelated types, judged by eq.
func CompareFunc[E1, E2, F1, F2 any](a *E1, fa Field[E1, F1], b *E2, fb Field[E2, F2], eq func(F1, F2) bool) bool {
	return eq(fa.Get(a), fb.Get(b))
}

// Equal reports whether the selected field of e holds value.
func Equal[E any, F comparable](e *E, f Field[E, F], value F) bool {
	return f.Get(e) == value
}

// EqualFunc is Equal against a value of any type, judged by eq.
func EqualFunc[E, F, V any](e *E, f Field[E, F], value V, eq func(F, V) bool) bool {
	return eq(f.Get(e), value)
}
