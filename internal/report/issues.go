package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/andyballingall/lintwalk/internal/lint"
)

// ConsoleIssuePrinter writes a checker's findings to the console, in red
// when colour is enabled, so they stand out from log lines.
type ConsoleIssuePrinter struct {
	w         io.Writer
	useColour bool
}

// NewIssuePrinter creates a ConsoleIssuePrinter writing to w.
func NewIssuePrinter(w io.Writer, useColour bool) *ConsoleIssuePrinter {
	return &ConsoleIssuePrinter{w: w, useColour: useColour}
}

// PrintIssues implements lint.IssuePrinter.
func (p *ConsoleIssuePrinter) PrintIssues(o lint.Outcome) {
	text := strings.TrimRight(o.Detail, "\n")
	if text == "" {
		return
	}
	fmt.Fprintln(p.w, paint(p.useColour, text, color.FgRed))
}
