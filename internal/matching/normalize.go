package matching

import (
	"strings"
	"unicode"
)

// unitNormalizations maps common kitchen abbreviations to a canonical word
var unitNormalizations = map[string]string{
	"tbsp":   "tablespoon",
	"tbs":    "tablespoon",
	"tbl":    "tablespoon",
	"tsp":    "teaspoon",
	"oz":     "ounce",
	"lb":     "pound",
	"lbs":    "pound",
	"min":    "minute",
	"mins":   "minute",
	"hr":     "hour",
	"hrs":    "hour",
	"g":      "gram",
	"kg":     "kilogram",
	"ml":     "milliliter",
}

// NormalizeWord lower-cases a word, strips surrounding punctuation and maps
// known unit abbreviations to their canonical form. It returns "" for a word
// made only of punctuation. Input need not be pre-trimmed; Tokenize passes
// already trimmed words, for which the trim is a no-op.
func NormalizeWord(word string) string {
	trimmed := strings.TrimFunc(word, isBoundary)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	if canonical, ok := unitNormalizations[lower]; ok {
		return canonical
	}
	return lower
}

func isBoundary(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r)
}
