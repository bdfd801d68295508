package cookfile

import "fmt"

// WriteError reports a failure to create or write a .cook file.
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cook file error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("cook file error for %s: %s", e.Path, e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
