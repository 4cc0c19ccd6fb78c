package app

import (
	"fmt"
	"strings"
)

// ProblemsFoundError is returned by a --strict run when at least one file
// failed to format or had style issues.
type ProblemsFoundError struct {
	FormatFailed int
	StyleIssues  int
}

func (e *ProblemsFoundError) Error() string {
	return fmt.Sprintf("lint problems found: %d failed to format, %d with style issues",
		e.FormatFailed, e.StyleIssues)
}

// InvalidOutputFormatError is returned for an unknown --output value.
type InvalidOutputFormatError struct {
	Value string
}

func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("must be one of '%s'", strings.Join(OutputFormats, "', '"))
}
