package app

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/andyballingall/lintwalk/internal/config"
	"github.com/andyballingall/lintwalk/internal/fs"
	"github.com/andyballingall/lintwalk/internal/lint"
	"github.com/andyballingall/lintwalk/internal/report"
	"github.com/andyballingall/lintwalk/internal/tool"
)

// Version is the current version of lintwalk, set at build time.
var Version = "dev"

// Banner with colour codes.
var Banner = "\033[32m" + `
    __    _       __                ____
   / /   (_)___  / /__      ______ _/ / /__
  / /   / / __ \/ __/ | /| / / __ '/ / //_/
 / /___/ / / / / /_ | |/ |/ / /_/ / / ,<
/_____/_/_/ /_/\__/ |__/|__/\__,_/_/_/|_|
` + "\033[0m"

var LongDescription = `
lintwalk walks a source tree and, for every Python file it finds, rewrites the
file in place with autopep8 and then checks it with flake8. Problems in one
file never stop the run; the summary at the end lists every file that could
not be formatted or still has style issues.

The root directory comes from the positional argument, --root,
` + config.RootDirEnvVar + ` or ` + config.LegacyRootDirEnvVar + ` (a .env file in the working directory is honoured).
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, stdout, stderr io.Writer, env fs.EnvProvider) *cobra.Command {
	var debug bool
	var noColour bool
	var rootDir pathValue

	rootCmd := &cobra.Command{
		Use:           "lintwalk",
		Short:         "Batch-format and style-check every Python file in a source tree",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          Banner + LongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				ll.Set(slog.LevelDebug)
			}
			// Only the run command needs the linting machinery.
			// Skip if already initialised (e.g., in tests)
			if cmd.Name() != RunCmdName || lazy.HasInner() {
				return nil
			}

			opts := config.Options{RootDir: string(rootDir)}
			if len(args) > 0 {
				opts.RootDir = args[0]
			}
			opts.Workers, _ = cmd.Flags().GetInt("workers")
			opts.Strict, _ = cmd.Flags().GetBool("strict")
			opts.FormatOnly, _ = cmd.Flags().GetBool("format-only")

			cfg, err := config.New(env, fs.NewPathResolver(), opts)
			if err != nil {
				return err
			}

			logger, closer, err := setupLogger(stderr, ll, cfg.RootDir, env)
			lazy.OnClose(closer)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}

			// Highlighted issues would corrupt a machine-readable summary on stdout.
			issueWriter := stdout
			if f := cmd.Flags().Lookup("output"); f != nil && f.Value.String() != FormatText {
				issueWriter = stderr
			}

			linter := lint.NewLinter(tool.NewExecRunner())
			linter.SetFormatOnly(cfg.FormatOnly)

			driver := lint.NewDriver(linter, logger)
			driver.SetSuffix(cfg.Suffix)
			driver.SetNumWorkers(cfg.Workers)
			driver.SetIssuePrinter(report.NewIssuePrinter(issueWriter, colourEnabled(noColour, issueWriter, env)))

			realMgr := NewCLIManager(logger, cfg, driver, colourEnabled(noColour, stdout, env))
			realMgr.SetReporterWriter(stdout)
			lazy.SetInner(realMgr)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().VarP(&rootDir, "root", "r",
		"root directory to lint (overrides "+config.RootDirEnvVar+")")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.PersistentFlags().BoolVarP(&noColour, "nocolour", "c", false, "Disable colour in output")
	// Support alternate spellings
	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColour", false, "")
	_ = rootCmd.PersistentFlags().MarkHidden("nocolor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColour")

	// Subcommands
	rootCmd.AddCommand(NewRunCmd(lazy))
	rootCmd.AddCommand(NewDoctorCmd())
	rootCmd.AddCommand(NewSchemaCmd())

	return rootCmd
}
