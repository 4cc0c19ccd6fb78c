package app

import (
	"github.com/spf13/cobra"
)

const RunCmdName = "run"

// NewRunCmd creates the command that formats and style-checks a source tree.
func NewRunCmd(mgr Manager) *cobra.Command {
	var verbose bool
	var watch bool
	format := formatValue(FormatText)

	cmd := &cobra.Command{
		Use:     RunCmdName + " [root]",
		Aliases: []string{"lint"},
		Short:   "Format and style-check every Python file under a root directory",
		Long: `Walk the root directory at every depth and, for each .py file, run

  autopep8 --in-place --aggressive --aggressive <file>
  flake8 <file>

A file that fails to format is not style-checked. Files that fail to format or
have style issues are reported without stopping the run; lintwalk exits 0
unless --strict is given. A missing autopep8 or flake8 executable stops the
run immediately.

A JSON log of every run is appended to ` + LogFile + ` in the root directory.
Set ` + LogEnvVar + ` to write it elsewhere.`,
		Example: `  lintwalk run ./src
  lintwalk run --workers 8 --strict
  ROOT_DIR=./src lintwalk run -o json
  lintwalk run ./src --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watch {
				return mgr.WatchLint(cmd.Context(), string(format), verbose, nil)
			}
			return mgr.Lint(cmd.Context(), string(format), verbose)
		},
	}

	cmd.Flags().IntP("workers", "w", 1, "Number of files to lint at once (1 lints in discovery order)")
	cmd.Flags().Bool("strict", false, "Exit with an error if any file failed to format or has style issues")
	cmd.Flags().Bool("format-only", false, "Run the formatter only and skip style checking")
	cmd.Flags().VarP(&format, "output", "o", "Summary format: text, json or yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every file in the text summary, not just problems")
	cmd.Flags().BoolVar(&watch, "watch", false, "After the first run, re-lint files as they change")

	return cmd
}
