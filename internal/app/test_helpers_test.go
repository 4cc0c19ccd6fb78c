package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/lintwalk/internal/config"
	"github.com/andyballingall/lintwalk/internal/fs"
	"github.com/andyballingall/lintwalk/internal/lint"
	"github.com/andyballingall/lintwalk/internal/tool"
)

// mapEnv is an fs.EnvProvider backed by a map.
type mapEnv map[string]string

func (m mapEnv) Get(key string) string {
	return m[key]
}

type MockManager struct {
	mock.Mock
	cfg *config.Config
}

func (m *MockManager) Lint(ctx context.Context, format string, verbose bool) error {
	args := m.Called(ctx, format, verbose)
	return args.Error(0)
}

func (m *MockManager) WatchLint(ctx context.Context, format string, verbose bool, readyChan chan<- struct{}) error {
	args := m.Called(ctx, format, verbose, readyChan)
	return args.Error(0)
}

func (m *MockManager) Config() *config.Config {
	return m.cfg
}

// fakeExecutor stands in for autopep8 and flake8. A file whose base name
// contains "fmtfail" fails to format; one containing "issues" has style issues.
type fakeExecutor struct {
	missing string

	mu    sync.Mutex
	calls map[string]int
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{calls: make(map[string]int)}
}

func (f *fakeExecutor) Run(_ context.Context, name string, args ...string) (*tool.Result, error) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()

	if name == f.missing {
		return nil, &tool.ExecutableNotFoundError{Name: name, Err: exec.ErrNotFound}
	}

	file := args[len(args)-1]
	res := &tool.Result{Name: name, Args: args}
	base := filepath.Base(file)
	switch {
	case name == lint.DefaultFormatter.Name && strings.Contains(base, "fmtfail"):
		res.ExitCode = 1
		res.Output = "error: cannot parse " + file + "\n"
	case name == lint.DefaultChecker.Name && strings.Contains(base, "issues"):
		res.ExitCode = 1
		res.Output = fmt.Sprintf("%s:1:2: E225 missing whitespace around operator\n", file)
		res.Stdout = res.Output
	}
	return res, nil
}

func (f *fakeExecutor) callsFor(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

// safeBuffer is a thread-safe wrapper around bytes.Buffer for use in concurrent tests.
type safeBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *safeBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *safeBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// waitForCount polls the buffer until substr appears at least n times or
// timeout is reached. Returns true if it did.
func (s *safeBuffer) waitForCount(substr string, n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Count(s.String(), substr) >= n {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

type failingWriter struct{}

func (f *failingWriter) Write(_ []byte) (n int, err error) {
	return 0, io.ErrClosedPipe
}

// writeSources creates each named file (relative to root) with a line of Python.
func writeSources(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(root, n)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x=1\n"), 0o600))
	}
}

// newTestManager builds a CLIManager over root that runs fake tools. The
// summary goes to the returned buffer and log records to logs.
func newTestManager(t *testing.T, root string, exec tool.Executor, strict bool) (*CLIManager, *safeBuffer, *safeBuffer) {
	t.Helper()
	logs := &safeBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{RootDir: root, Suffix: fs.PythonSuffix, Workers: 1, Strict: strict}
	d := lint.NewDriver(lint.NewLinter(exec), logger)

	mgr := NewCLIManager(logger, cfg, d, false)
	out := &safeBuffer{}
	mgr.SetReporterWriter(out)
	return mgr, out, logs
}
