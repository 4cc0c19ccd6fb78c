// Package tool runs external command-line tools and captures their output.
package tool

import (
	"context"
	"time"
)

// Command is an executable plus the arguments placed before the target file.
type Command struct {
	Name string
	Args []string
}

// With returns the full argument vector for running c against file.
func (c Command) With(file string) []string {
	args := make([]string, 0, len(c.Args)+1)
	args = append(args, c.Args...)
	return append(args, file)
}

func (c Command) String() string {
	return c.Name
}

// Result describes a tool that was spawned and ran to completion.
type Result struct {
	Name     string
	Args     []string
	ExitCode int
	// Output holds stdout and stderr interleaved in the order they were written.
	Output string
	// Stdout holds standard output only.
	Stdout   string
	Duration time.Duration
}

// Success reports whether the tool exited with status 0.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Executor spawns a tool and waits for it to exit.
// A tool that runs and exits non-zero is not an error: the exit code is on
// the Result. Failing to spawn the tool is reported as ExecutableNotFoundError.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}
