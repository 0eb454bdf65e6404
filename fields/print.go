package fields

import (
	"io"
	"os"

	"facet/sliceutil"
)

// Fprint writes each element's selected field on its own line to w, framed
// by a blank line before and after the listing.
func Fprint[E, F any](w io.Writer, collection []E, field Field[E, F]) {
	sliceutil.Fprint(w, Extract(collection, field))
}

// Print writes the selected fields to standard output, one per line, framed
// by blank lines.
func Print[E, F any](collection []E, field Field[E, F]) {
	Fprint(os.Stdout, collection, field)
}
