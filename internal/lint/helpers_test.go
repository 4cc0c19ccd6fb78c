package lint

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andyballingall/lintwalk/internal/tool"
)

// fakeExecutor stands in for the external tools. Behaviour is decided by
// markers in the target file's base name:
//
//	fmtfail   the formatter exits 1 with "cannot format" on its output
//	issues    the checker exits 1 reporting one E501 violation
type fakeExecutor struct {
	mu    sync.Mutex
	calls map[string][]string

	// missing names tools that cannot be spawned.
	missing map[string]bool
	// missingFor names files for which the formatter cannot be spawned.
	missingFor map[string]bool
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{calls: make(map[string][]string)}
}

func (f *fakeExecutor) Run(ctx context.Context, name string, args ...string) (*tool.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file := args[len(args)-1]

	f.mu.Lock()
	f.calls[name] = append(f.calls[name], file)
	f.mu.Unlock()

	if f.missing[name] || (name == DefaultFormatter.Name && f.missingFor[filepath.Base(file)]) {
		return nil, &tool.ExecutableNotFoundError{Name: name, Err: os.ErrNotExist}
	}

	base := filepath.Base(file)
	res := &tool.Result{Name: name, Args: args}
	switch {
	case name == DefaultFormatter.Name && strings.Contains(base, "fmtfail"):
		res.ExitCode = 1
		res.Output = "cannot format " + file + "\n"
	case name == DefaultChecker.Name && strings.Contains(base, "issues"):
		res.ExitCode = 1
		res.Output = file + ":1:80: E501 line too long (88 > 79 characters)\n"
	}
	res.Stdout = res.Output
	return res, nil
}

func (f *fakeExecutor) callsFor(name string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls[name]...)
}

// recordingPrinter collects the outcomes passed to PrintIssues.
type recordingPrinter struct {
	mu       sync.Mutex
	outcomes []Outcome
}

func (p *recordingPrinter) PrintIssues(o Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.outcomes = append(p.outcomes, o)
}

// safeBuffer is a bytes.Buffer that may be written from several goroutines.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger() (*slog.Logger, *safeBuffer) {
	buf := &safeBuffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func writeSources(t *testing.T, root string, names ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(names))
	for _, n := range names {
		p := filepath.Join(root, n)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("import os\n"), 0o600))
		paths = append(paths, p)
	}
	return paths
}
