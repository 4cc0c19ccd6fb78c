package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/andyballingall/lintwalk/internal/fs"
)

// Run executes lintwalk with args (args[0] is the program name). A nil
// envProvider reads the process environment overlaid with ./.env.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, envProvider fs.EnvProvider) error {
	logLevel := &slog.LevelVar{}
	logLevel.Set(slog.LevelInfo)

	// Local lazy instance ensures t.Parallel() safety
	lazy := &LazyManager{}
	defer func() { _ = lazy.Close() }()

	if envProvider == nil {
		envProvider = loadEnv(fs.DotEnvFile, stderr)
	}

	rootCmd := NewRootCmd(lazy, logLevel, stdout, stderr, envProvider)
	rootCmd.SetArgs(args[1:]) // Skip the program name
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print error to stderr for script tests and CLI users (SilenceErrors is set)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}

	return nil
}

// loadEnv overlays the process environment with the .env file at path. A
// file that cannot be parsed is reported and ignored so that commands which
// need no configuration still work.
func loadEnv(path string, stderr io.Writer) fs.EnvProvider {
	dotEnv, err := fs.NewDotEnvProvider(path, fs.NewEnvProvider())
	if err != nil {
		fmt.Fprintf(stderr, "Warning: ignoring %s: %v\n", path, err)
		return fs.NewEnvProvider()
	}
	return dotEnv
}
