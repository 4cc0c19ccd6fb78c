package report

import (
	"encoding/json"
	"io"

	"github.com/andyballingall/lintwalk/internal/lint"
)

// JSONReporter implements lint.Reporter for JSON output.
type JSONReporter struct{}

func (jr *JSONReporter) Write(w io.Writer, r *lint.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newSummary(r))
}
