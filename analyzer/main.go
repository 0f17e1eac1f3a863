package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abiiranathan/localize-usage/analyzer/catalog"
	"github.com/abiiranathan/localize-usage/analyzer/config"
	"github.com/abiiranathan/localize-usage/analyzer/report"
)

// errFindings is returned when a run reports error-severity findings. The
// findings themselves have already been printed.
var errFindings = errors.New("error-severity findings reported")

// app is the state shared by every subcommand once the persistent flags
// are resolved.
type app struct {
	// Persistent flags.
	configPath string
	color      string
	locale     string
	verbose    bool

	cfg       config.Config
	colorMode report.ColorMode
	printer   *catalog.Printer
	logger    *slog.Logger

	stdout io.Writer
	stderr io.Writer
}

// main is the CLI entry point for the localize usage checker.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(os.Stdout, os.Stderr)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "localize-usage",
		Short: "Check localize calls and Localize components for placeholder consistency",
		Long: `localize-usage checks that localize(text, values) calls and <Localize> components
use static message templates and bind every {{placeholder}} those templates contain.

JavaScript and TypeScript sources are read as ESTree JSON dumps produced by an
external parser; Go sources are loaded directly.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a .toml or .yaml config file (default: nearest .localize-usage.toml/.yaml)")
	flags.StringVar(&a.color, "color", "auto", "colorize output (auto|on|off)")
	flags.StringVar(&a.locale, "locale", "", "message locale (default: config locale, then en-US)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(
		newCheckCmd(a),
		newCheckGoCmd(a),
		newRulesCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup resolves the persistent flags, the logger and the configuration
// before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	mode, err := report.ParseColorMode(a.color)
	if err != nil {
		return err
	}
	a.colorMode = mode

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	cfg, err := config.Load(wd, a.configPath)
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		a.logger.Debug("loaded config", "path", cfg.Path)
	}
	a.cfg = cfg

	locale := cfg.Locale
	if cmd.Flags().Changed("locale") {
		locale = a.locale
	}
	a.printer = catalog.Default().Printer(locale)

	return nil
}

// useColor reports whether output to w should be colorized.
func (a *app) useColor(w io.Writer) bool {
	mode := a.colorMode
	if mode == "" {
		// Commands that skip setup still honour --color.
		mode = report.ColorMode(a.color)
	}
	f, _ := w.(*os.File)
	return report.UseColor(mode, f)
}

// absPath resolves path to an absolute path.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("could not resolve absolute path for %s: %w", path, err)
	}
	return abs, nil
}
