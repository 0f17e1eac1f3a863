// Package report writes run results for humans and tools.
package report

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/abiiranathan/localize-usage/analyzer/runner"
)

// Format selects an output encoding.
type Format string

const (
	// FormatPretty groups findings by file, colorised when enabled.
	FormatPretty Format = "pretty"
	// FormatJSON is the compact JSON document, optionally gzip-compressed.
	FormatJSON Format = "json"
	// FormatShort prints one file:line:col line per finding.
	FormatShort Format = "short"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatPretty, FormatJSON, FormatShort:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want pretty, json or short)", s)
}

// ColorMode is the --color setting.
type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

// ParseColorMode validates a --color value.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorOn, ColorOff:
		return m, nil
	}
	return "", fmt.Errorf("unknown color mode %q (want auto, on or off)", s)
}

// UseColor resolves mode for output written to f. Auto enables color only
// when f is a terminal.
func UseColor(mode ColorMode, f *os.File) bool {
	switch mode {
	case ColorOn:
		return true
	case ColorAuto:
		return f != nil && term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Options configures Write.
type Options struct {
	Format Format
	// Color enables ANSI colors in the pretty format.
	Color bool
	// Compress gzips the JSON format.
	Compress bool
}

// Write encodes res to w in the selected format.
func Write(w io.Writer, res *runner.Result, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return WriteJSON(w, res, opts.Compress)
	case FormatShort:
		return WriteShort(w, res)
	case FormatPretty, "":
		return WritePretty(w, res, opts.Color)
	}
	return fmt.Errorf("unknown format %q", opts.Format)
}
