package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/andyballingall/lintwalk/internal/lint"
)

// YAMLReporter implements lint.Reporter for YAML output.
type YAMLReporter struct{}

func (yr *YAMLReporter) Write(w io.Writer, r *lint.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newSummary(r)); err != nil {
		return err
	}
	return enc.Close()
}
