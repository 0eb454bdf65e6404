package fields

// LinkedField couples a working copy of one field with the element it was
// read from. Edits land on the copy until Commit writes them back; Restore
// re-reads the element. The element pointer is not owned: the caller keeps
// it alive, and nothing here locks.
type LinkedField[E, F any] struct {
	parent *E
	field  Field[E, F]
	value  F
	dirty  bool
}

// Link reads the field of e and returns the value coupled to its element.
func Link[E, F any](e *E, field Field[E, F]) *LinkedField[E, F] {
	return &LinkedField[E, F]{
		parent: e,
		field:  field,
		value:  field.Get(e),
	}
}

// Value returns the working copy.
func (l *LinkedField[E, F]) Value() F { return l.value }

// SetValue replaces the working copy and marks the link dirty. The element
// is untouched until Commit.
func (l *LinkedField[E, F]) SetValue(v F) {
	l.value = v
	l.dirty = true
}

// Dirty reports whether SetValue has been called since the last Commit or
// Restore.
func (l *LinkedField[E, F]) Dirty() bool { return l.dirty }

// Commit writes the working copy into the element and clears the dirty
// flag.
func (l *LinkedField[E, F]) Commit() {
	l.field.Set(l.parent, l.value)
	l.dirty = false
}

// Restore overwrites the working copy with the element's current field
// value and clears the dirty flag.
func (l *LinkedField[E, F]) Restore() {
	l.value = l.field.Get(l.parent)
	l.dirty = false
}

// Parent returns the linked element.
func (l *LinkedField[E, F]) Parent() *E { return l.parent }

// CopyParent returns a copy of the linked element.
func (l *LinkedField[E, F]) CopyParent() E { return *l.parent }
