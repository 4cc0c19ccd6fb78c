// Package config builds the run configuration once at startup.
package config

import (
	"github.com/andyballingall/lintwalk/internal/fs"
)

const (
	// RootDirEnvVar names the directory to lint.
	RootDirEnvVar = "LINTWALK_ROOT_DIR"
	// LegacyRootDirEnvVar is consulted when RootDirEnvVar is not set.
	LegacyRootDirEnvVar = "ROOT_DIR"
)

// Config is the validated configuration for a run. Nothing below the app
// layer reads the environment; everything it needs is here.
type Config struct {
	// RootDir is absolute with symlinks resolved, when it exists.
	RootDir    string
	Suffix     string
	Workers    int
	Strict     bool
	FormatOnly bool
}

// Options carries values supplied on the command line.
type Options struct {
	// RootDir overrides the environment when non-empty.
	RootDir    string
	Workers    int
	Strict     bool
	FormatOnly bool
}

// New resolves and validates the configuration. The root directory comes
// from opts.RootDir, then RootDirEnvVar, then LegacyRootDirEnvVar.
// It fails with MissingRootDirError if none is set. Symlinks in the root are
// resolved when it exists; otherwise it is only made absolute and walking it
// reports the problem.
func New(env fs.EnvProvider, pr fs.PathResolver, opts Options) (*Config, error) {
	root := opts.RootDir
	source := "--root"
	if root == "" {
		root = env.Get(RootDirEnvVar)
		source = RootDirEnvVar
	}
	if root == "" {
		root = env.Get(LegacyRootDirEnvVar)
		source = LegacyRootDirEnvVar
	}
	if root == "" {
		return nil, &MissingRootDirError{}
	}

	abs, err := pr.CanonicalPath(root)
	if err != nil {
		abs, err = pr.Abs(root)
	}
	if err != nil {
		return nil, &InvalidRootDirError{Value: root, Source: source, Wrapped: err}
	}

	workers := opts.Workers
	if workers == 0 {
		workers = 1
	}
	if workers < 1 {
		return nil, &InvalidWorkersError{Value: workers}
	}

	return &Config{
		RootDir:    abs,
		Suffix:     fs.PythonSuffix,
		Workers:    workers,
		Strict:     opts.Strict,
		FormatOnly: opts.FormatOnly,
	}, nil
}
