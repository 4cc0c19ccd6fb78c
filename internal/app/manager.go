package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/andyballingall/lintwalk/internal/config"
	"github.com/andyballingall/lintwalk/internal/lint"
	"github.com/andyballingall/lintwalk/internal/report"
)

// Manager defines the business logic behind the lintwalk commands.
type Manager interface {
	Lint(ctx context.Context, format string, verbose bool) error
	WatchLint(ctx context.Context, format string, verbose bool, readyChan chan<- struct{}) error
	Config() *config.Config
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation, allowing
// for deferred initialization of dependencies.
type LazyManager struct {
	inner   Manager
	closers []io.Closer
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner returns true if the inner manager has been set.
// This is used by PersistentPreRunE to skip initialization if already configured (e.g., in tests).
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

// OnClose registers c to be closed by Close.
func (l *LazyManager) OnClose(c io.Closer) {
	if c != nil {
		l.closers = append(l.closers, c)
	}
}

// Close releases resources acquired while the inner manager was built.
func (l *LazyManager) Close() error {
	var errs []error
	for _, c := range l.closers {
		errs = append(errs, c.Close())
	}
	l.closers = nil
	return errors.Join(errs...)
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) Lint(ctx context.Context, format string, verbose bool) error {
	return l.check().Lint(ctx, format, verbose)
}

func (l *LazyManager) WatchLint(ctx context.Context, format string, verbose bool, readyChan chan<- struct{}) error {
	return l.check().WatchLint(ctx, format, verbose, readyChan)
}

func (l *LazyManager) Config() *config.Config {
	return l.check().Config()
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface.
type CLIManager struct {
	logger         *slog.Logger
	cfg            *config.Config
	driver         *lint.Driver
	useColour      bool
	reporterWriter io.Writer

	// lintedMu guards linted, the modification time of each file as it was
	// after lintwalk last linted it in watch mode.
	lintedMu sync.Mutex
	linted   map[string]time.Time
}

func NewCLIManager(l *slog.Logger, cfg *config.Config, d *lint.Driver, useColour bool) *CLIManager {
	return &CLIManager{
		logger:         l,
		cfg:            cfg,
		driver:         d,
		useColour:      useColour,
		reporterWriter: os.Stdout,
		linted:         make(map[string]time.Time),
	}
}

// SetReporterWriter sets where end-of-run summaries are written. It defaults to os.Stdout.
func (m *CLIManager) SetReporterWriter(w io.Writer) {
	m.reporterWriter = w
}

func (m *CLIManager) Config() *config.Config {
	return m.cfg
}

func (m *CLIManager) reporter(format string, verbose bool) lint.Reporter {
	switch format {
	case FormatJSON:
		return &report.JSONReporter{}
	case FormatYAML:
		return &report.YAMLReporter{}
	default:
		return &report.TextReporter{Verbose: verbose, UseColour: m.useColour}
	}
}

// Lint formats and style-checks every matching file under the root
// directory, then writes the summary in the requested format.
func (m *CLIManager) Lint(ctx context.Context, format string, verbose bool) error {
	m.logger.Debug("linting", "root", m.cfg.RootDir, "workers", m.cfg.Workers, "format", format,
		"verbose", verbose, "strict", m.cfg.Strict, "formatOnly", m.cfg.FormatOnly)

	r, err := m.driver.Run(ctx, m.cfg.RootDir)
	if err != nil {
		return err
	}

	if err := m.reporter(format, verbose).Write(m.reporterWriter, r); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if m.cfg.Strict && r.HasProblems() {
		counts := r.Counts()
		return &ProblemsFoundError{
			FormatFailed: counts[lint.FormatFailed],
			StyleIssues:  counts[lint.StyleIssues],
		}
	}
	return nil
}

// WatchLint lints the whole tree once and then re-lints each file as it changes,
// until ctx is cancelled.
// If you want to know when the watcher is ready to start listening to changes,
// pass a non-nil readyChan to be notified.
func (m *CLIManager) WatchLint(ctx context.Context, format string, verbose bool, readyChan chan<- struct{}) error {
	var problems *ProblemsFoundError
	if err := m.Lint(ctx, format, verbose); err != nil && !errors.As(err, &problems) {
		return err
	}

	watcher := lint.NewWatcher(m.cfg.RootDir, m.driver.Suffix(), m.logger)

	var group singleflight.Group
	callback := func(path string) {
		_, _, _ = group.Do(path, func() (any, error) {
			m.relint(ctx, path, format, verbose)
			return nil, nil
		})
	}

	if readyChan != nil {
		go func() {
			select {
			case <-watcher.Ready:
				readyChan <- struct{}{}
			case <-ctx.Done():
			}
		}()
	}

	err := watcher.Watch(ctx, callback)
	if errors.Is(err, context.Canceled) {
		m.logger.Info("Interrupted by user")
		return nil
	}
	return err
}

func (m *CLIManager) relint(ctx context.Context, path, format string, verbose bool) {
	// The formatter rewrites files in place, which fires another event.
	if m.unchangedSinceLint(path) {
		m.logger.Debug("skipping file unchanged since last lint", "file", path)
		return
	}

	m.logger.Info(fmt.Sprintf("Changed: %s", path))
	r, err := m.driver.LintFiles(ctx, m.cfg.RootDir, []string{path})
	m.rememberLint(path)
	if err != nil {
		if ctx.Err() == nil {
			m.logger.Error("Lint failed", "error", err)
		}
		return
	}

	if err := m.reporter(format, verbose).Write(m.reporterWriter, r); err != nil {
		m.logger.Error("Failed to write report", "error", err)
	}
}

func (m *CLIManager) unchangedSinceLint(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	m.lintedMu.Lock()
	defer m.lintedMu.Unlock()
	last, ok := m.linted[path]
	return ok && info.ModTime().Equal(last)
}

func (m *CLIManager) rememberLint(path string) {
	info, err := os.Stat(path)
	m.lintedMu.Lock()
	defer m.lintedMu.Unlock()
	if err != nil {
		delete(m.linted, path)
		return
	}
	m.linted[path] = info.ModTime()
}
