package fields

import "facet/sliceutil"

// Distribute extracts the selected field of every element and splits the
// values into count contiguous chunks, with the same remainder and
// forceEqual rules as sliceutil.Distribute.
func Distribute[E, F any](collection []E, field Field[E, F], count int, forceEqual bool) [][]F {
	return sliceutil.Distribute(Extract(collection, field), count, forceEqual)
}
