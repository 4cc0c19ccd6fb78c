package fs

import (
	"errors"
	"fmt"
)

// ErrNotDirectory is wrapped by FilesystemError when the root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// FilesystemError is returned when the tree under the root cannot be walked.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
