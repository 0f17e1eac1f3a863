package report

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"

	"github.com/abiiranathan/localize-usage/analyzer/runner"
)

// WriteJSON serializes res as compact JSON. If compress is true, the output
// is gzip-compressed.
func WriteJSON(w io.Writer, res *runner.Result, compress bool) error {
	if compress {
		return writeGzipJSON(w, res)
	}
	return encodeJSON(w, res)
}

func encodeJSON(w io.Writer, output any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "") // disable indent (reduces size by > 2x)

	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeGzipJSON(w io.Writer, output any) error {
	gzWriter := gzip.NewWriter(w)

	if err := encodeJSON(gzWriter, output); err != nil {
		gzWriter.Close()
		return err
	}

	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to close gzip writer: %w", err)
	}
	return nil
}
