package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andyballingall/lintwalk/internal/lint"
	"github.com/andyballingall/lintwalk/internal/tool"
)

// NewDoctorCmd creates the command that checks the external tools are installed.
func NewDoctorCmd() *cobra.Command {
	var formatOnly bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that autopep8 and flake8 can be found on PATH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			linter := lint.NewLinter(tool.NewExecRunner())
			linter.SetFormatOnly(formatOnly)

			out := cmd.OutOrStdout()
			for _, name := range linter.Tools() {
				p, err := tool.Locate(name)
				if err != nil {
					fmt.Fprintf(out, "✗ %s: not found on PATH\n", name)
					continue
				}
				fmt.Fprintf(out, "✓ %s: %s\n", name, p)
			}
			return tool.Preflight(linter.Tools()...)
		},
	}

	cmd.Flags().BoolVar(&formatOnly, "format-only", false, "Only check for the formatter, as 'run --format-only' needs")

	return cmd
}
