// Package runner checks many inputs in parallel and merges their findings
// into one deterministic result.
package runner

import (
	"cmp"
	"context"
	"log/slog"
	"runtime"
	"slices"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/abiiranathan/localize-usage/analyzer/ast"
	"github.com/abiiranathan/localize-usage/analyzer/catalog"
	"github.com/abiiranathan/localize-usage/analyzer/validator"
)

// Options configures a run.
type Options struct {
	// Config selects names, extra-property mode and rule severities.
	Config validator.AnalysisConfig
	// Printer renders messages; nil uses the base locale.
	Printer *catalog.Printer
	// Jobs bounds the number of files checked at once; <= 0 uses GOMAXPROCS.
	Jobs int
	// MaxDiagnostics truncates the sorted results; 0 keeps all of them.
	MaxDiagnostics int
	// BaseDir, when set, makes result file names relative to it.
	BaseDir string
	// Tests includes _test.go files when checking Go packages.
	Tests bool
	// Logger receives progress records; nil uses slog.Default().
	Logger *slog.Logger
}

// Result is the merged outcome of a run.
type Result struct {
	// Results are the findings sorted by file, line, column and rule.
	Results []validator.ValidationResult `json:"results"`
	// Errors are inputs that could not be checked. They do not stop the run.
	Errors []string `json:"errors,omitempty"`
	// Files is the number of inputs checked.
	Files int `json:"files"`
	// Truncated reports whether MaxDiagnostics dropped findings.
	Truncated bool `json:"truncated,omitempty"`
	// ErrorCount and WarningCount count every finding, including truncated ones.
	ErrorCount   int `json:"errorCount"`
	WarningCount int `json:"warningCount"`
}

// Count returns the number of listed findings with severity sev.
func (r *Result) Count(sev validator.Severity) int {
	n := 0
	for _, res := range r.Results {
		if res.Severity == sev {
			n++
		}
	}
	return n
}

// HasErrors reports whether any finding, listed or truncated, has error
// severity.
func (r *Result) HasErrors() bool {
	return r.ErrorCount > 0 || r.Count(validator.SeverityError) > 0
}

// fileOutcome is what checking one input produced. Exactly one of the
// fields is meaningful.
type fileOutcome struct {
	results []validator.ValidationResult
	err     error
}

// CheckFiles checks ESTree dumps. Directories in paths are walked for files
// ending in ast.ASTFileSuffix.
func CheckFiles(ctx context.Context, paths []string, opts Options) (*Result, error) {
	files, err := ast.FindASTFiles(paths)
	if err != nil {
		return nil, err
	}

	names := validator.Names(opts.Config)
	checker := validator.NewChecker(opts.Config)
	printer := opts.printer()

	return run(ctx, files, opts, func(path string) ([]validator.ValidationResult, error) {
		sites, err := ast.ParseESTreeFile(path, names)
		if err != nil {
			return nil, err
		}
		return render(checker.Check(sites), printer), nil
	})
}

// CheckGoPackages loads the Go packages matching patterns under dir and
// checks their localize calls and component literals.
func CheckGoPackages(ctx context.Context, dir string, patterns []string, opts Options) (*Result, error) {
	goFiles, loadErrs, err := ast.LoadGoFiles(dir, opts.Tests, patterns...)
	if err != nil {
		return nil, err
	}

	cfg := opts.Config.ForGo()
	names := validator.Names(cfg)
	checker := validator.NewChecker(cfg)
	printer := opts.printer()

	byPath := make(map[string]ast.GoFile, len(goFiles))
	paths := make([]string, 0, len(goFiles))
	for _, f := range goFiles {
		byPath[f.Path] = f
		paths = append(paths, f.Path)
	}

	res, err := run(ctx, paths, opts, func(path string) ([]validator.ValidationResult, error) {
		f := byPath[path]
		sites := ast.GoSites(f.Fset, f.Info, f.Syntax, names)
		return render(checker.Check(sites), printer), nil
	})
	if err != nil {
		return nil, err
	}

	res.Errors = append(loadErrs, res.Errors...)
	return res, nil
}

// run checks every path with check, at most opts.Jobs at a time. Results are
// stored by index so no locking is needed.
func run(ctx context.Context, paths []string, opts Options, check func(path string) ([]validator.ValidationResult, error)) (*Result, error) {
	logger := opts.logger()

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]fileOutcome, len(paths))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results, err := check(path)
			outcomes[i] = fileOutcome{results: results, err: err}
			done.Add(1)

			logger.Debug("checked file", "file", path, "diagnostics", len(results), "error", err)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Files: len(paths), Results: []validator.ValidationResult{}}
	for i, o := range outcomes {
		if o.err != nil {
			logger.Warn("skipping file", "file", paths[i], "error", o.err)
			res.Errors = append(res.Errors, o.err.Error())
			continue
		}
		for _, r := range o.results {
			if opts.BaseDir != "" {
				r.File = ast.RelativePath(r.File, opts.BaseDir)
			}
			res.Results = append(res.Results, r)
		}
	}

	SortResults(res.Results)
	res.ErrorCount = res.Count(validator.SeverityError)
	res.WarningCount = res.Count(validator.SeverityWarning)

	if opts.MaxDiagnostics > 0 && len(res.Results) > opts.MaxDiagnostics {
		res.Results = res.Results[:opts.MaxDiagnostics]
		res.Truncated = true
	}

	logger.Info("check finished",
		"files", done.Load(),
		"errors", res.ErrorCount,
		"warnings", res.WarningCount,
		"skipped", len(res.Errors),
	)

	return res, nil
}

// SortResults orders results by file, line, column and rule. Findings that
// tie keep their emission order.
func SortResults(results []validator.ValidationResult) {
	slices.SortStableFunc(results, func(a, b validator.ValidationResult) int {
		return cmp.Or(
			cmp.Compare(a.File, b.File),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Column, b.Column),
			cmp.Compare(a.Rule, b.Rule),
		)
	})
}

func render(diags []validator.Diagnostic, p *catalog.Printer) []validator.ValidationResult {
	out := make([]validator.ValidationResult, 0, len(diags))
	for _, d := range diags {
		out = append(out, p.Render(d))
	}
	return out
}

func (o Options) printer() *catalog.Printer {
	if o.Printer != nil {
		return o.Printer
	}
	return catalog.Default().Printer(catalog.BaseLocale)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
