package textutil

import "slices"

// Sublists returns every contiguous sublist of seq.
// The empty sublist comes first, followed by the rest ordered by increasing end index
// and, for the same end index, increasing start index. For len(seq) == n the result
// holds 1 + n(n+1)/2 entries. Each entry is a fresh copy and does not alias seq.
func Sublists[T any](seq []T) [][]T {
	n := len(seq)
	lists := make([][]T, 0, 1+n*(n+1)/2)
	lists = append(lists, []T{})
	for end := 1; end <= n; end++ {
		for start := 0; start < end; start++ {
			lists = append(lists, slices.Clone(seq[start:end]))
		}
	}
	return lists
}
