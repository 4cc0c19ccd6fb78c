package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/andyballingall/lintwalk/internal/lint"
)

// TextReporter implements lint.Reporter for plain text output.
type TextReporter struct {
	Verbose   bool
	UseColour bool
}

var statusLabels = map[lint.Kind]string{
	lint.Formatted:    "FORMATTED",
	lint.StyleClean:   "OK",
	lint.StyleIssues:  "ISSUES",
	lint.FormatFailed: "FAILED",
}

// paint returns s rendered with the given attributes if colourisation is enabled.
func paint(enabled bool, s string, attrs ...color.Attribute) string {
	if !enabled {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

func statusColour(k lint.Kind) color.Attribute {
	switch k {
	case lint.FormatFailed, lint.StyleIssues:
		return color.FgRed
	default:
		return color.FgGreen
	}
}

func (tr *TextReporter) Write(w io.Writer, r *lint.Report) error {
	divider := strings.Repeat("-", 40)

	fmt.Fprintf(w, "%s\n", divider)
	fmt.Fprint(w, paint(tr.UseColour, "LINTWALK REPORT\n\n", color.FgWhite, color.Bold))
	fmt.Fprintf(w, "%s %s\n", paint(tr.UseColour, "Root:    ", color.FgHiBlack), r.Root)
	fmt.Fprintf(w, "%s %s\n", paint(tr.UseColour, "Started: ", color.FgHiBlack), r.StartTime.Format("15:04:05"))
	fmt.Fprintf(w, "%s %s\n", paint(tr.UseColour, "Duration:", color.FgHiBlack), r.Duration().String())
	fmt.Fprintf(w, "%s\n", divider)

	for _, o := range r.Results {
		if !tr.Verbose && !o.Kind.IsProblem() {
			continue
		}

		status := paint(tr.UseColour, "["+statusLabels[o.Kind]+"]", statusColour(o.Kind))
		fmt.Fprintf(w, "%s %s\n", status, o.Path)

		if !o.Kind.IsProblem() {
			continue
		}
		for _, line := range strings.Split(strings.TrimRight(o.Detail, "\n"), "\n") {
			if line == "" {
				continue
			}
			fmt.Fprintf(w, "    %s\n", paint(tr.UseColour, line, color.FgHiBlack))
		}
	}

	counts := r.Counts()
	fmt.Fprintf(w, "%s\n", divider)
	label := paint(tr.UseColour, "Lint summary: ", color.FgWhite, color.Bold)
	stats := fmt.Sprintf("%d files, %d clean, %d formatted, %d with issues, %d failed to format",
		len(r.Results), counts[lint.StyleClean], counts[lint.Formatted],
		counts[lint.StyleIssues], counts[lint.FormatFailed])
	statsColour := color.FgGreen
	if r.HasProblems() {
		statsColour = color.FgRed
	}
	fmt.Fprintf(w, "%s%s\n", label, paint(tr.UseColour, stats, statsColour, color.Bold))
	fmt.Fprintf(w, "%s\n", divider)

	return nil
}
