// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cook-scraper/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintRecipe outputs a human-readable summary of a recipe about to be written.
func (p *Printer) PrintRecipe(recipe *types.Recipe, source, path string) {
	if recipe == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:   %s\n", recipe.Title))
	sb.WriteString(fmt.Sprintf("Source:  %s\n", source))
	if recipe.TotalTime != "" {
		sb.WriteString(fmt.Sprintf("Time:    %s minutes\n", recipe.TotalTime))
	}
	if recipe.Image != "" {
		sb.WriteString(fmt.Sprintf("Image:   %s\n", recipe.Image))
	}
	sb.WriteString(fmt.Sprintf("File:    %s\n", path))

	steps := nonEmptyLines(recipe.Instructions)
	if len(steps) > 0 {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Instructions (%d lines):\n", len(steps)))
		count := min(len(steps), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", steps[i]))
		}
		if len(steps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(steps)-maxItemsToShow))
		}
	}

	p.printBox("RECIPE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs where a phrase was located in a text.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMatch(phrase string, span types.MatchSpan, found bool, text string) {
	if !found {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate("NO MATCH: "+phrase, boxWidth-4))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	runes := []rune(text)
	span = span.Clamp(len(runes))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Phrase:  %s\n", phrase))
	sb.WriteString(fmt.Sprintf("Span:    [%d, %d) of %d\n", span.Start, span.End, len(runes)))
	sb.WriteString(fmt.Sprintf("Matched: %s", string(runes[span.Start:span.End])))

	p.printBox("MATCH", sb.String())
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
