package fields

// Field addresses one field of an element type E through a get/set pair.
// The zero value has no accessors and panics on use; build values with New
// or Of.
type Field[E, F any] struct {
	get func(*E) F
	set func(*E, F)
}

// New builds a Field from an explicit getter and setter pair. Use it when
// the field is reached through methods or needs conversion on the way in
// or out; for plain struct fields prefer Of.
func New[E, F any](get func(*E) F, set func(*E, F)) Field[E, F] {
	return Field[E, F]{get: get, set: set}
}

// Of builds a Field from a single selector returning the field's address,
// e.g. Of(func(c *Card) *int { return &c.Rank }).
func Of[E, F any](selector func(*E) *F) Field[E, F] {
	return Field[E, F]{
		get: func(e *E) F { return *selector(e) },
		set: func(e *E, v F) { *selector(e) = v },
	}
}

// Get returns the field value of e.
func (f Field[E, F]) Get(e *E) F { return f.get(e) }

// Set writes v into the field of e.
func (f Field[E, F]) Set(e *E, v F) { f.set(e, v) }

// Update rewrites the field of e with fn applied to its current value.
func (f Field[E, F]) Update(e *E, fn func(F) F) {
	f.set(e, fn(f.get(e)))
}

// Updated returns a copy of e with the field rewritten by fn. The
// original is untouched.
func (f Field[E, F]) Updated(e E, fn func(F) F) E {
	f.set(&e, fn(f.get(&e)))
	return e
}
