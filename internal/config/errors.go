package config

import (
	"fmt"
)

// MissingRootDirError is the configuration error raised when no root directory is set.
type MissingRootDirError struct{}

func (e *MissingRootDirError) Error() string {
	return fmt.Sprintf("no root directory configured: pass [root] or --root, or set %s or %s",
		RootDirEnvVar, LegacyRootDirEnvVar)
}

type InvalidRootDirError struct {
	Wrapped error
	Value   string
	Source  string
}

func (e *InvalidRootDirError) Error() string {
	return fmt.Sprintf("root directory '%s' from %s is invalid: %v", e.Value, e.Source, e.Wrapped)
}

func (e *InvalidRootDirError) Unwrap() error {
	return e.Wrapped
}

type InvalidWorkersError struct {
	Value int
}

func (e *InvalidWorkersError) Error() string {
	return fmt.Sprintf("workers must be at least 1, got %d", e.Value)
}
