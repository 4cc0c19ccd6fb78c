package tool

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"sync"
	"time"
)

// lookPath is a variable for exec.LookPath to allow mocking in tests.
var lookPath = exec.LookPath

// ExecRunner is the Executor backed by os/exec.
type ExecRunner struct {
	// Dir is the working directory of spawned tools. Empty means the current one.
	Dir string
}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts name with args (no shell involved) and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	//nolint:gosec // tool names are fixed by the caller and args are not shell-interpreted
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir

	// The two streams are copied by separate goroutines.
	combined := &lockedBuffer{}
	var stdout bytes.Buffer
	cmd.Stdout = io.MultiWriter(combined, &stdout)
	cmd.Stderr = combined

	start := time.Now()
	err := cmd.Run()
	res := &Result{
		Name:     name,
		Args:     args,
		Output:   combined.String(),
		Stdout:   stdout.String(),
		Duration: time.Since(start),
	}

	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		if res.ExitCode < 0 && ctx.Err() != nil {
			// Killed because the context ended.
			return nil, ctx.Err()
		}
		return res, nil
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return nil, &ExecutableNotFoundError{Name: name, Err: err}
}

// Locate returns the path the named executable resolves to on PATH.
func Locate(name string) (string, error) {
	p, err := lookPath(name)
	if err != nil {
		return "", &ExecutableNotFoundError{Name: name, Err: err}
	}
	return p, nil
}

// Preflight checks that every named executable can be found on PATH.
func Preflight(names ...string) error {
	for _, n := range names {
		if _, err := Locate(n); err != nil {
			return err
		}
	}
	return nil
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
