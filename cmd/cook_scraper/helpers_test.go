package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/cook-scraper/internal/config"
)

// executeCommand runs the CLI in-process with the given stdin and arguments.
func executeCommand(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	clearCookEnv(t)

	root := newRootCmd()
	var outBuf, errBuf bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)

	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

// clearCookEnv blanks COOK_* variables so a developer's .env does not leak into tests.
func clearCookEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvOutputDir, config.EnvSource, config.EnvLogLevel, config.EnvContextRadius} {
		t.Setenv(key, "")
	}
}

// writeTestFile writes content to name inside dir and returns the path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
