package lint

import (
	"fmt"
	"time"
)

// Kind classifies the result of running the tools against one file.
type Kind string

const (
	// Formatted means the formatter succeeded and style checking was not requested.
	Formatted Kind = "formatted"
	// FormatFailed means the formatter exited non-zero. The checker was not run.
	FormatFailed Kind = "format-failed"
	// StyleClean means both tools exited 0.
	StyleClean Kind = "style-clean"
	// StyleIssues means the checker exited non-zero, reporting violations.
	StyleIssues Kind = "style-issues"
)

// Kinds lists every Kind in display order.
var Kinds = []Kind{Formatted, StyleClean, StyleIssues, FormatFailed}

// IsProblem reports whether the outcome needs attention.
func (k Kind) IsProblem() bool {
	return k == FormatFailed || k == StyleIssues
}

func (k Kind) String() string {
	return string(k)
}

// Outcome is the classified result of linting one file.
type Outcome struct {
	Path string
	Kind Kind
	// Detail is the captured output of the tool that decided the outcome:
	// the formatter for FormatFailed, the checker otherwise.
	Detail   string
	Duration time.Duration
}

func (o Outcome) String() string {
	return fmt.Sprintf("%s: %s", o.Path, o.Kind)
}
