package filesystem

import (
	"errors"
	"fmt"
)

// ErrRootNotDirectory is an error that occurs when the given scan root exists
// but is not a directory.
var ErrRootNotDirectory = errors.New("root is not a directory")

// EnumerationError is an error that occurs when the tree below a scan root
// could not be enumerated at all.
type EnumerationError struct {
	Path string
	Err  error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("(fs) failed to enumerate %q: %v", e.Path, e.Err)
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}
