package sliceutil

import (
	"fmt"
	"io"
	"os"
)

// Fprint writes each element on its own line to w, framed by a blank line
// before and after the listing.
func Fprint[T any](w io.Writer, collection []T) {
	fmt.Fprintln(w)
	for _, v := range collection {
		fmt.Fprintln(w, v)
	}
	fmt.Fprintln(w)
}

// Print writes the collection to standard output, one element per line,
// framed by blank lines.
func Print[T any](collection []T) {
	Fprint(os.Stdout, collection)
}
