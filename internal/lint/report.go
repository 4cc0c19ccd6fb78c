package lint

import (
	"io"
	"time"
)

// Reporter writes a summary of a run.
type Reporter interface {
	Write(w io.Writer, report *Report) error
}

// Report holds the outcome of every file linted in a run, in enumeration order.
type Report struct {
	Root      string
	StartTime time.Time
	EndTime   time.Time
	Results   []Outcome
}

// NewReport creates an empty Report for root.
func NewReport(root string) *Report {
	return &Report{Root: root}
}

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Counts returns the number of outcomes of each Kind.
func (r *Report) Counts() map[Kind]int {
	counts := make(map[Kind]int, len(Kinds))
	for _, o := range r.Results {
		counts[o.Kind]++
	}
	return counts
}

// Problems returns the outcomes that failed to format or have style issues.
func (r *Report) Problems() []Outcome {
	var p []Outcome
	for _, o := range r.Results {
		if o.Kind.IsProblem() {
			p = append(p, o)
		}
	}
	return p
}

// HasProblems reports whether any file failed to format or has style issues.
func (r *Report) HasProblems() bool {
	for _, o := range r.Results {
		if o.Kind.IsProblem() {
			return true
		}
	}
	return false
}
