// Package matching locates phrases inside recipe text for highlighting.
package matching

import (
	"slices"
	"unicode"

	"github.com/jonathan/cook-scraper/internal/textutil"
	"github.com/jonathan/cook-scraper/internal/types"
)

// Token is a normalized word of a text with its rune offsets (end exclusive).
type Token struct {
	Word       string
	Start, End int
}

// Tokenize splits text on whitespace and returns the normalized words with their
// rune offsets. Offsets exclude any leading or trailing punctuation.
func Tokenize(text string) []Token {
	runes := []rune(text)
	var tokens []Token

	i := 0
	for i < len(runes) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			i++
		}
		end := i

		for start < end && isBoundary(runes[start]) {
			start++
		}
		for end > start && isBoundary(runes[end-1]) {
			end--
		}
		if start == end {
			continue
		}

		word := NormalizeWord(string(runes[start:end]))
		if word == "" {
			continue
		}
		tokens = append(tokens, Token{Word: word, Start: start, End: end})
	}

	return tokens
}

// FindPhrase returns the span of the longest run of consecutive phrase words found
// in text. Words compare case-insensitively after NormalizeWord. Among runs of equal
// length the one appearing earliest in the phrase wins, and the first occurrence in
// text is reported. The bool is false when phrase has no words or nothing matches.
func FindPhrase(text, phrase string) (types.MatchSpan, bool) {
	phraseWords := words(phrase)
	if len(phraseWords) == 0 {
		return types.MatchSpan{}, false
	}

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return types.MatchSpan{}, false
	}

	candidates := textutil.Sublists(phraseWords)[1:]
	slices.SortStableFunc(candidates, func(a, b []string) int {
		return len(b) - len(a)
	})

	for _, candidate := range candidates {
		if span, ok := findRun(tokens, candidate); ok {
			return span, true
		}
	}
	return types.MatchSpan{}, false
}

func words(phrase string) []string {
	var out []string
	for _, tok := range Tokenize(phrase) {
		out = append(out, tok.Word)
	}
	return out
}

func findRun(tokens []Token, run []string) (types.MatchSpan, bool) {
	for i := 0; i+len(run) <= len(tokens); i++ {
		matched := true
		for j, word := range run {
			if tokens[i+j].Word != word {
				matched = false
				break
			}
		}
		if matched {
			return types.MatchSpan{Start: tokens[i].Start, End: tokens[i+len(run)-1].End}, true
		}
	}
	return types.MatchSpan{}, false
}
