package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func TestHighlightCommand_Offsets(t *testing.T) {
	textPath := writeTestFile(t, t.TempDir(), "text.txt", alphabet)

	stdout, stderr, err := executeCommand(t, "", "highlight", "--text", textPath, "--start", "10", "--end", "15")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	want := "..." + alphabet[:33] + "...\n" + strings.Repeat(" ", 13) + "^^^^^\n"
	assert.Equal(t, want, stderr)
}

func TestHighlightCommand_OutOfRangeOffsets(t *testing.T) {
	_, stderr, err := executeCommand(t, alphabet, "highlight", "-t", "-", "--start", "30", "--end", "99")
	require.NoError(t, err)
	assert.Contains(t, stderr, "^^^^^^\n")
}

func TestHighlightCommand_Phrase(t *testing.T) {
	text := "Preheat the oven. Whisk the eggs with sugar until pale."

	_, stderr, err := executeCommand(t, text, "highlight", "-t", "-", "--phrase", "EGGS")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stderr, "\n"), "\n")
	require.Len(t, lines, 2)
	col := strings.Index(lines[1], "^")
	assert.Equal(t, "eggs", lines[0][col:col+4])
}

func TestHighlightCommand_PhraseVerbose(t *testing.T) {
	stdout, _, err := executeCommand(t, "Whisk the eggs.", "highlight", "-t", "-", "-p", "eggs", "-v")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Matched: eggs")
}

func TestHighlightCommand_PhraseNotFound(t *testing.T) {
	_, _, err := executeCommand(t, "Whisk the eggs.", "highlight", "-t", "-", "-p", "saffron")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `phrase "saffron" not found`)
}

func TestHighlightCommand_Radius(t *testing.T) {
	_, stderr, err := executeCommand(t, alphabet, "highlight", "-t", "-", "--start", "10", "--end", "12", "--radius", "2")
	require.NoError(t, err)
	assert.Equal(t, "...89abcd...\n     ^^\n", stderr)
}

func TestHighlightCommand_RadiusFromEnv(t *testing.T) {
	clearCookEnv(t)
	t.Setenv("COOK_CONTEXT_RADIUS", "1")

	root := newRootCmd()
	var out, errOut strings.Builder
	root.SetIn(strings.NewReader(alphabet))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"highlight", "-t", "-", "--start", "10", "--end", "11"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "...9ab...\n    ^\n", errOut.String())
}

func TestHighlightCommand_PhraseAndOffsetsConflict(t *testing.T) {
	_, _, err := executeCommand(t, alphabet, "highlight", "-t", "-", "-p", "abc", "--start", "1", "--end", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestHighlightCommand_NoMatchSelector(t *testing.T) {
	_, _, err := executeCommand(t, alphabet, "highlight", "-t", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of the flags")
}

func TestHighlightCommand_StartWithoutEnd(t *testing.T) {
	_, _, err := executeCommand(t, alphabet, "highlight", "-t", "-", "--start", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must all be set")
}
