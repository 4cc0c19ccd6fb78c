// Package lint applies an external formatter and style checker to source files.
package lint

import (
	"context"
	"time"

	"github.com/andyballingall/lintwalk/internal/tool"
)

// DefaultFormatter rewrites a file in place, applying aggressive fixes.
var DefaultFormatter = tool.Command{
	Name: "autopep8",
	Args: []string{"--in-place", "--aggressive", "--aggressive"},
}

// DefaultChecker reports style violations without modifying the file.
var DefaultChecker = tool.Command{Name: "flake8"}

// Linter runs the formatter and then the checker against a single file.
type Linter struct {
	exec      tool.Executor
	formatter tool.Command
	checker   tool.Command

	formatOnly bool
}

// NewLinter creates a Linter using the default tools.
func NewLinter(exec tool.Executor) *Linter {
	return &Linter{
		exec:      exec,
		formatter: DefaultFormatter,
		checker:   DefaultChecker,
	}
}

// SetFormatter replaces the formatter command.
func (l *Linter) SetFormatter(c tool.Command) {
	l.formatter = c
}

// SetChecker replaces the style checker command.
func (l *Linter) SetChecker(c tool.Command) {
	l.checker = c
}

// SetFormatOnly controls whether the checker is skipped. It defaults to false.
func (l *Linter) SetFormatOnly(b bool) {
	l.formatOnly = b
}

// Tools returns the executables this Linter will invoke.
func (l *Linter) Tools() []string {
	if l.formatOnly {
		return []string{l.formatter.Name}
	}
	return []string{l.formatter.Name, l.checker.Name}
}

// Lint formats file in place and then checks its style.
// A formatter failure short-circuits: the checker is not run and the outcome
// is FormatFailed. An error is only returned when a tool cannot be run at all
// (tool.ExecutableNotFoundError) or ctx ends.
func (l *Linter) Lint(ctx context.Context, file string) (Outcome, error) {
	start := time.Now()
	out := Outcome{Path: file}

	fr, err := l.exec.Run(ctx, l.formatter.Name, l.formatter.With(file)...)
	if err != nil {
		return Outcome{}, err
	}
	if !fr.Success() {
		out.Kind = FormatFailed
		out.Detail = fr.Output
		out.Duration = time.Since(start)
		return out, nil
	}

	if l.formatOnly {
		out.Kind = Formatted
		out.Detail = fr.Output
		out.Duration = time.Since(start)
		return out, nil
	}

	cr, err := l.exec.Run(ctx, l.checker.Name, l.checker.With(file)...)
	if err != nil {
		return Outcome{}, err
	}

	out.Detail = cr.Output
	out.Kind = StyleClean
	if !cr.Success() {
		out.Kind = StyleIssues
	}
	out.Duration = time.Since(start)
	return out, nil
}
