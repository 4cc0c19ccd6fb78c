package lint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/andyballingall/lintwalk/internal/fs"
)

// IssuePrinter highlights style issues on the console.
type IssuePrinter interface {
	PrintIssues(o Outcome)
}

// Driver lints every matching file under a root directory.
type Driver struct {
	linter  *Linter
	logger  *slog.Logger
	printer IssuePrinter

	suffix     string
	numWorkers int

	// logMu keeps the log lines of one file together when workers run in parallel.
	logMu sync.Mutex
}

// NewDriver creates a Driver that lints files sequentially.
func NewDriver(l *Linter, logger *slog.Logger) *Driver {
	return &Driver{
		linter:     l,
		logger:     logger,
		suffix:     fs.PythonSuffix,
		numWorkers: 1,
	}
}

// SetSuffix sets the suffix of files to lint. It defaults to fs.PythonSuffix.
func (d *Driver) SetSuffix(s string) {
	d.suffix = s
}

// Suffix returns the suffix of files to lint.
func (d *Driver) Suffix() string {
	return d.suffix
}

// SetNumWorkers sets how many files are linted at once. It defaults to 1,
// which lints files strictly one after another in enumeration order.
func (d *Driver) SetNumWorkers(n int) {
	if n < 1 {
		n = 1
	}
	d.numWorkers = n
}

// SetIssuePrinter sets where style issues are highlighted. Nil disables highlighting.
func (d *Driver) SetIssuePrinter(p IssuePrinter) {
	d.printer = p
}

// Run lints every file under root whose name ends with the suffix.
//
// Per-file problems (FormatFailed, StyleIssues) are logged and recorded and
// never stop the run. A tool that cannot be spawned stops the whole batch:
// the partial report is returned along with the tool.ExecutableNotFoundError.
// A root that cannot be walked returns an fs.FilesystemError before any
// file is linted.
func (d *Driver) Run(ctx context.Context, root string) (*Report, error) {
	files, err := fs.Enumerate(root, d.suffix)
	if err != nil {
		return nil, err
	}

	d.logger.Debug("files discovered", "root", root, "count", len(files), "suffix", d.suffix)
	if len(files) == 0 {
		d.logger.Info(fmt.Sprintf("No %s files found in %s", d.suffix, root))
	}

	return d.LintFiles(ctx, root, files)
}

// LintFiles lints files, recording the outcomes in a Report for root.
func (d *Driver) LintFiles(ctx context.Context, root string, files []string) (*Report, error) {
	report := NewReport(root)
	report.StartTime = time.Now()
	defer func() { report.EndTime = time.Now() }()

	if d.numWorkers <= 1 || len(files) <= 1 {
		for _, f := range files {
			o, err := d.LintFile(ctx, f)
			if err != nil {
				return report, err
			}
			report.Results = append(report.Results, o)
		}
		return report, nil
	}

	results := make([]*Outcome, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.numWorkers)

	for i, f := range files {
		if gctx.Err() != nil {
			break
		}
		i, f := i, f
		g.Go(func() error {
			o, err := d.LintFile(gctx, f)
			if err != nil {
				return err
			}
			results[i] = &o
			return nil
		})
	}

	err := g.Wait()

	for _, o := range results {
		if o != nil {
			report.Results = append(report.Results, *o)
		}
	}

	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	return report, err
}

// LintFile lints a single file and logs its outcome.
func (d *Driver) LintFile(ctx context.Context, file string) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	o, err := d.linter.Lint(ctx, file)

	d.logMu.Lock()
	defer d.logMu.Unlock()

	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			d.logger.Error(fmt.Sprintf("Could not lint %s", file), "file", file, "error", err)
		}
		return Outcome{}, err
	}

	d.logOutcome(o)
	return o, nil
}

func (d *Driver) logOutcome(o Outcome) {
	l := d.logger.With("file", o.Path, "outcome", o.Kind, "duration", o.Duration)

	switch o.Kind {
	case FormatFailed:
		l.Error(fmt.Sprintf("%s failed to format %s", d.linter.formatter, o.Path), "output", o.Detail)
		if detail := strings.TrimSpace(o.Detail); detail != "" {
			d.logger.Error(detail)
		}
	case StyleIssues:
		l.Warn(fmt.Sprintf("%s found issues in %s", d.linter.checker, o.Path), "output", o.Detail)
		if d.printer != nil {
			d.printer.PrintIssues(o)
		}
	case Formatted:
		l.Info(fmt.Sprintf("Formatted %s", o.Path))
	default:
		l.Info(fmt.Sprintf("Linted %s", o.Path))
	}
}
