package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/abiiranathan/localize-usage/analyzer/runner"
	"github.com/abiiranathan/localize-usage/analyzer/validator"
)

type palette struct {
	file, pos, err, warn, rule, summary *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		file:    color.New(color.Underline),
		pos:     color.New(color.Faint),
		err:     color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		rule:    color.New(color.Faint),
		summary: color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.file, p.pos, p.err, p.warn, p.rule, p.summary} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// WritePretty prints findings grouped by file followed by a summary line.
// Results are expected sorted by file.
func WritePretty(w io.Writer, res *runner.Result, useColor bool) error {
	p := newPalette(useColor)
	bw := bufio.NewWriter(w)

	posWidth, msgWidth := 0, 0
	for _, r := range res.Results {
		posWidth = max(posWidth, len(position(r)))
		msgWidth = max(msgWidth, len(r.Message))
	}

	current := ""
	for i, r := range res.Results {
		if i == 0 || r.File != current {
			if i > 0 {
				fmt.Fprintln(bw)
			}
			current = r.File
			fmt.Fprintln(bw, p.file.Sprint(r.File))
		}

		sev := p.err.Sprintf("%-7s", r.Severity)
		if r.Severity == validator.SeverityWarning {
			sev = p.warn.Sprintf("%-7s", r.Severity)
		}

		fmt.Fprintf(bw, "  %s  %s  %-*s  %s\n",
			p.pos.Sprintf("%-*s", posWidth, position(r)),
			sev,
			msgWidth, r.Message,
			p.rule.Sprint(r.Rule),
		)
	}

	for _, e := range res.Errors {
		fmt.Fprintf(bw, "%s %s\n", p.err.Sprint("error:"), e)
	}

	errs := max(res.ErrorCount, res.Count(validator.SeverityError))
	warns := max(res.WarningCount, res.Count(validator.SeverityWarning))
	total := errs + warns
	if total > 0 {
		if len(res.Results) > 0 {
			fmt.Fprintln(bw)
		}
		c := p.warn
		if errs > 0 {
			c = p.err
		}
		fmt.Fprintln(bw, c.Sprintf("%d %s (%d %s, %d %s)",
			total, plural(total, "problem"), errs, plural(errs, "error"), warns, plural(warns, "warning")))
	}
	if res.Truncated {
		fmt.Fprintln(bw, p.summary.Sprint("output truncated, raise --max-diagnostics to see more"))
	}

	return bw.Flush()
}

func position(r validator.ValidationResult) string {
	return fmt.Sprintf("%d:%d", r.Line, r.Column)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
