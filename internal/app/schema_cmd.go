package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andyballingall/lintwalk/internal/report"
)

// NewSchemaCmd creates the command that publishes the JSON summary schema and
// checks summaries against it.
func NewSchemaCmd() *cobra.Command {
	var validate pathValue

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of 'run --output json' summaries",
		Example: `  lintwalk schema > summary.schema.json
  lintwalk run -o json > out.json && lintwalk schema --validate out.json
  lintwalk run -o json | lintwalk schema --validate -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if validate == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), report.JSONSchema)
				return err
			}

			var r io.Reader
			if validate == "-" {
				r = cmd.InOrStdin()
			} else {
				f, err := os.Open(string(validate))
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			if err := report.ValidateSummary(r); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid lintwalk summary\n", validate)
			return nil
		},
	}

	cmd.Flags().Var(&validate, "validate", "Validate a JSON summary file against the schema ('-' reads stdin)")

	return cmd
}
