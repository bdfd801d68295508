package types

// MatchSpan identifies a matched region of a text by rune offsets.
// End is exclusive.
type MatchSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of runes covered by the span, or 0 for a reversed span.
func (s MatchSpan) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Clamp returns the span forced into 0 <= Start <= End <= n.
// A reversed span collapses to an empty span at its (clamped) start.
func (s MatchSpan) Clamp(n int) MatchSpan {
	if n < 0 {
		n = 0
	}
	start := min(max(s.Start, 0), n)
	end := min(max(s.End, start), n)
	return MatchSpan{Start: start, End: end}
}
