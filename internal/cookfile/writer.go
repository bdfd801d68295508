// Package cookfile renders recipes into the plain-text .cook format and writes them to disk.
//
// A .cook file holds three header lines, a blank line and the instructions verbatim:
//
//	>> source: https://example.com/pasta
//	>> time required: 30 minutes
//	>> image: https://example.com/pasta.jpg
//
//	Boil water...
package cookfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jonathan/cook-scraper/internal/types"
)

const (
	// Extension is appended to the recipe title to form the filename.
	Extension = ".cook"

	// TimeUnit is appended literally after the total time.
	TimeUnit = "minutes"

	filePerm = 0644
)

// Path returns the output path for a recipe title inside dir.
// An empty dir means the current working directory. The title is used as is.
func Path(dir, title string) string {
	name := title + Extension
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// SourceFor returns the value written on the source line: source when set,
// otherwise the recipe's own link.
func SourceFor(source string, recipe *types.Recipe) string {
	if source != "" {
		return source
	}
	return recipe.Link
}

// Render writes recipe to w in .cook format.
func Render(w io.Writer, source string, recipe *types.Recipe) error {
	if recipe == nil {
		return fmt.Errorf("recipe is nil")
	}

	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, ">> source: %s\n", SourceFor(source, recipe))
	_, _ = fmt.Fprintf(bw, ">> time required: %s %s\n", recipe.TotalTime, TimeUnit)
	_, _ = fmt.Fprintf(bw, ">> image: %s\n\n", recipe.Image)
	_, _ = bw.WriteString(recipe.Instructions)

	// bufio.Writer keeps the first write error and reports it here
	return bw.Flush()
}

// checkWritable rejects an existing target without owner write permission,
// which a rename would otherwise silently replace.
func checkWritable(target string) error {
	info, err := os.Stat(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return &WriteError{Path: target, Message: "failed to stat file", Cause: err}
	}
	if info.IsDir() {
		return &WriteError{Path: target, Message: "target is a directory"}
	}
	if info.Mode().Perm()&0200 == 0 {
		return &WriteError{Path: target, Message: "target is read-only", Cause: fs.ErrPermission}
	}
	return nil
}

// WriteRecipe writes recipe to <dir>/<title>.cook, replacing any existing file,
// and returns the path written. The content goes to a temporary file in the same
// directory first and is renamed into place, so the target is either fully
// written or left untouched.
func WriteRecipe(dir, source string, recipe *types.Recipe) (string, error) {
	if recipe == nil {
		return "", &WriteError{Message: "recipe is nil"}
	}

	target := Path(dir, recipe.Title)
	if err := checkWritable(target); err != nil {
		return "", err
	}

	// fixed-length name so a title near NAME_MAX still fits
	tmpPath := filepath.Join(filepath.Dir(target), "."+uuid.NewString()+Extension+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return "", &WriteError{Path: target, Message: "failed to create file", Cause: err}
	}

	committed := false
	defer func() {
		_ = f.Close()
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if err := Render(f, source, recipe); err != nil {
		return "", &WriteError{Path: target, Message: "failed to write recipe", Cause: err}
	}
	if err := f.Sync(); err != nil {
		return "", &WriteError{Path: target, Message: "failed to sync file", Cause: err}
	}
	if err := f.Close(); err != nil {
		return "", &WriteError{Path: target, Message: "failed to close file", Cause: err}
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return "", &WriteError{Path: target, Message: "failed to replace file", Cause: err}
	}

	committed = true
	return target, nil
}
