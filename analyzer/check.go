package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/abiiranathan/localize-usage/analyzer/report"
	"github.com/abiiranathan/localize-usage/analyzer/runner"
)

// checkFlags are shared by check and check-go.
type checkFlags struct {
	format          string
	compress        bool
	jobs            int
	extraProperties bool
	maxDiagnostics  int
	tests           bool
}

func (f *checkFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.format, "format", "f", "pretty", "output format (pretty|json|short)")
	flags.BoolVar(&f.compress, "compress", false, "gzip-compress JSON output")
	flags.IntVarP(&f.jobs, "jobs", "j", 0, "files checked in parallel (default: config jobs, then GOMAXPROCS)")
	flags.BoolVar(&f.extraProperties, "extra-properties", false, "also report bindings that match no placeholder")
	flags.IntVar(&f.maxDiagnostics, "max-diagnostics", 0, "stop printing after this many findings (0: no limit)")
}

func newCheckCmd(a *app) *cobra.Command {
	var f checkFlags

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check ESTree JSON dumps of JavaScript and TypeScript sources",
		Long: `Check ESTree JSON dumps of JavaScript or TypeScript sources.

Files named explicitly are checked whatever their name; directories are walked
for files ending in .ast.json, skipping node_modules and hidden directories.
Produce dumps with any ESTree parser with locations enabled, for example:

  npx acorn --ecma2022 --locations src/app.js > src/app.ast.json`,
		Example: `  localize-usage check src/
  localize-usage check --format json --compress build/ast > report.json.gz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			return a.runCheck(cmd, &f, func(ctx context.Context, opts runner.Options) (*runner.Result, error) {
				return runner.CheckFiles(ctx, args, opts)
			})
		},
	}
	f.register(cmd)
	return cmd
}

func newCheckGoCmd(a *app) *cobra.Command {
	var f checkFlags

	cmd := &cobra.Command{
		Use:   "check-go [dir] [patterns...]",
		Short: "Check localize calls and Localize literals in Go packages",
		Long: `Check Go packages. dir defaults to the working directory and patterns to ./...

Calls to the configured functions are checked like localize(text, values), with
fmt.Sprintf templates treated as template literals. Composite literals of the
configured component type are checked through their Text and Values fields.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir, args = args[0], args[1:]
			}
			absDir, err := absPath(dir)
			if err != nil {
				return err
			}
			return a.runCheck(cmd, &f, func(ctx context.Context, opts runner.Options) (*runner.Result, error) {
				opts.BaseDir = absDir
				return runner.CheckGoPackages(ctx, absDir, args, opts)
			})
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&f.tests, "tests", false, "include _test.go files")
	return cmd
}

// runCheck merges flags over the configuration, runs check and prints the
// result. It returns errFindings when error-severity findings were reported.
func (a *app) runCheck(cmd *cobra.Command, f *checkFlags, check func(context.Context, runner.Options) (*runner.Result, error)) error {
	format, err := report.ParseFormat(f.format)
	if err != nil {
		return err
	}

	cfg := a.cfg
	if cmd.Flags().Changed("extra-properties") {
		cfg.ExtraProperties = f.extraProperties
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = f.jobs
	}

	analysisCfg, err := cfg.AnalysisConfig()
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	opts := runner.Options{
		Config:         analysisCfg,
		Printer:        a.printer,
		Jobs:           cfg.Jobs,
		MaxDiagnostics: f.maxDiagnostics,
		BaseDir:        wd,
		Tests:          f.tests,
		Logger:         a.logger,
	}

	res, err := check(cmd.Context(), opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := report.Write(out, res, report.Options{
		Format:   format,
		Color:    a.useColor(out),
		Compress: f.compress,
	}); err != nil {
		return err
	}

	if res.HasErrors() {
		return errFindings
	}
	return nil
}
