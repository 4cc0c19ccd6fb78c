package tool

import "fmt"

// ExecutableNotFoundError is returned when a tool cannot be spawned at all,
// typically because it is not installed, not on PATH or not executable.
type ExecutableNotFoundError struct {
	Name string
	Err  error
}

func (e *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf("cannot run %s: %v", e.Name, e.Err)
}

func (e *ExecutableNotFoundError) Unwrap() error {
	return e.Err
}
