package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/abiiranathan/localize-usage/analyzer/runner"
)

// WriteShort prints one line per finding:
//
//	file:line:col: severity: message [rule]
func WriteShort(w io.Writer, res *runner.Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range res.Results {
		fmt.Fprintf(bw, "%s:%d:%d: %s: %s [%s]\n", r.File, r.Line, r.Column, r.Severity, r.Message, r.Rule)
	}
	for _, e := range res.Errors {
		fmt.Fprintf(bw, "error: %s\n", e)
	}
	return bw.Flush()
}
