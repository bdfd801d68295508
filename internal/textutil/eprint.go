// Package textutil provides the small text helpers shared by the cook-scraper tools:
// diagnostic printing, contiguous sublist enumeration and match highlighting.
package textutil

import (
	"fmt"
	"io"
	"os"
)

// Stderr is the diagnostic stream. Tests may swap it for a buffer.
var Stderr io.Writer = os.Stderr

// Eprint writes its operands to the diagnostic stream using fmt.Fprint semantics.
//
//nolint:errcheck // diagnostics are best effort
func Eprint(a ...any) {
	fmt.Fprint(Stderr, a...)
}

// Eprintln writes its operands to the diagnostic stream followed by a newline.
//
//nolint:errcheck // diagnostics are best effort
func Eprintln(a ...any) {
	fmt.Fprintln(Stderr, a...)
}

// Eprintf formats according to format and writes to the diagnostic stream.
//
//nolint:errcheck // diagnostics are best effort
func Eprintf(format string, a ...any) {
	fmt.Fprintf(Stderr, format, a...)
}
