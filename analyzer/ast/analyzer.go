// Package ast turns host syntax trees into the host-neutral nodes checked by
// the validator package:
// 1. ESTree / Babel JSON dumps produced by an external JavaScript parser
// 2. Go source files, loaded with golang.org/x/tools/go/packages
//
// Both intakes locate localize sites (function calls and component usages)
// and convert their arguments and attributes into Node values.
package ast

import (
	"fmt"
	"os"
)

// ParseESTreeFile reads one ESTree dump from disk and returns its sites.
func ParseESTreeFile(path string, names Names) ([]Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseESTree(data, path, names)
}
