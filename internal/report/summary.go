// Package report renders the end-of-run summary of a lint run.
package report

import (
	"time"

	"github.com/andyballingall/lintwalk/internal/lint"
)

// summary is the document written by the JSON and YAML reporters.
type summary struct {
	Root      string        `json:"root" yaml:"root"`
	StartTime string        `json:"startTime" yaml:"startTime"`
	EndTime   string        `json:"endTime" yaml:"endTime"`
	Duration  string        `json:"duration" yaml:"duration"`
	Stats     summaryStats  `json:"stats" yaml:"stats"`
	Results   []summaryFile `json:"results" yaml:"results"`
}

type summaryStats struct {
	Total        int `json:"total" yaml:"total"`
	Formatted    int `json:"formatted" yaml:"formatted"`
	StyleClean   int `json:"styleClean" yaml:"styleClean"`
	StyleIssues  int `json:"styleIssues" yaml:"styleIssues"`
	FormatFailed int `json:"formatFailed" yaml:"formatFailed"`
}

type summaryFile struct {
	Path    string `json:"path" yaml:"path"`
	Outcome string `json:"outcome" yaml:"outcome"`
	Detail  string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

func newSummary(r *lint.Report) summary {
	counts := r.Counts()
	s := summary{
		Root:      r.Root,
		StartTime: r.StartTime.Format(time.RFC3339),
		EndTime:   r.EndTime.Format(time.RFC3339),
		Duration:  r.Duration().String(),
		Stats: summaryStats{
			Total:        len(r.Results),
			Formatted:    counts[lint.Formatted],
			StyleClean:   counts[lint.StyleClean],
			StyleIssues:  counts[lint.StyleIssues],
			FormatFailed: counts[lint.FormatFailed],
		},
		Results: make([]summaryFile, 0, len(r.Results)),
	}

	for _, o := range r.Results {
		f := summaryFile{Path: o.Path, Outcome: o.Kind.String()}
		if o.Kind.IsProblem() {
			f.Detail = o.Detail
		}
		s.Results = append(s.Results, f)
	}
	return s
}
