// Package constraints declares the type sets used by the generic helpers in
// this module.
//
// Only the capabilities Go cannot spell natively get a name here. Equality
// checks use the builtin comparable, printing works for any type through the
// fmt verbs, and access to a single struct field is carried by a
// fields.Field accessor instead of a constraint. Helpers over numeric
// containers constrain the slice type directly, as in [S ~[]E, E Numeric].
package constraints

import "golang.org/x/exp/constraints"

// Numeric permits any type supporting the arithmetic and comparison
// operators.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Integral permits any type that additionally supports the modulo operator.
type Integral interface {
	constraints.Integer
}

// Float permits any floating-point type.
type Float interface {
	constraints.Float
}

// Ordered permits any type supporting the ordering operators, including
// strings.
type Ordered interface {
	constraints.Ordered
}
