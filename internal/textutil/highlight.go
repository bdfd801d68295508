package textutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cook-scraper/internal/types"
)

const (
	// DefaultContextRadius is the number of runes shown on each side of a match.
	DefaultContextRadius = 18

	ellipsis = "..."
)

// Highlight writes a two line excerpt of text to w: the match with DefaultContextRadius
// runes of context on either side, framed by "...", and a caret line under the match.
// Offsets are rune offsets with end exclusive. Out of range and reversed offsets are
// clamped rather than rejected; the only error comes from w.
func Highlight(w io.Writer, text string, start, end int) error {
	return HighlightRadius(w, text, start, end, DefaultContextRadius)
}

// HighlightStderr writes the highlight for text[start:end] to the diagnostic stream.
func HighlightStderr(text string, start, end int) {
	_ = Highlight(Stderr, text, start, end)
}

// HighlightRadius is Highlight with a caller chosen context radius.
// A negative radius is treated as zero.
func HighlightRadius(w io.Writer, text string, start, end, radius int) error {
	window, marker := Excerpt(text, types.MatchSpan{Start: start, End: end}, radius)
	_, err := fmt.Fprintf(w, "%s\n%s\n", window, marker)
	return err
}

// Excerpt builds the two highlight lines without writing them.
func Excerpt(text string, span types.MatchSpan, radius int) (window, marker string) {
	runes := []rune(text)
	span = span.Clamp(len(runes))
	radius = max(radius, 0)

	lo := max(span.Start-radius, 0)
	hi := min(span.End+radius, len(runes))

	window = ellipsis + string(runes[lo:hi]) + ellipsis
	marker = strings.Repeat(" ", len(ellipsis)+span.Start-lo) + strings.Repeat("^", span.Len())
	return window, marker
}
