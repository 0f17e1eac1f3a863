package ast

import (
	"fmt"
	goast "go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
)

// GoFile is one parsed Go source file together with the type information of
// the package it belongs to.
type GoFile struct {
	Path   string
	Syntax *goast.File
	Fset   *token.FileSet
	Info   *types.Info
}

// LoadGoFiles loads the packages matching patterns (default "./...") under
// dir and returns their source files.
//
// Vendor and generated packages are skipped. Package errors that are not
// about import resolution are returned as messages rather than failing the
// load, since a partially type-checked file can still be inspected.
func LoadGoFiles(dir string, tests bool, patterns ...string) ([]GoFile, []string, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	fset := token.NewFileSet()
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo | packages.NeedImports,
		Dir:   dir,
		Fset:  fset,
		Tests: tests,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, nil, fmt.Errorf("load packages: %w", err)
	}

	var (
		files []GoFile
		errs  []string
		seen  = make(map[string]bool)
	)

	for _, pkg := range pkgs {
		if shouldSkipPackage(pkg.PkgPath) {
			continue
		}

		for _, e := range pkg.Errors {
			if !IsImportRelatedError(e.Msg) {
				errs = append(errs, fmt.Sprintf("type error: %v", e.Msg))
			}
		}

		for _, f := range pkg.Syntax {
			tf := fset.File(f.Pos())
			if tf == nil {
				continue
			}
			// With Tests enabled a file appears in both the package and its
			// test variant.
			if seen[tf.Name()] {
				continue
			}
			seen[tf.Name()] = true

			files = append(files, GoFile{
				Path:   tf.Name(),
				Syntax: f,
				Fset:   fset,
				Info:   pkg.TypesInfo,
			})
		}
	}

	return files, errs, nil
}

// shouldSkipPackage reports whether a package is vendored or generated.
func shouldSkipPackage(pkgPath string) bool {
	lower := strings.ToLower(pkgPath)

	if strings.Contains(lower, "/vendor/") || strings.HasPrefix(lower, "vendor/") {
		return true
	}

	if strings.Contains(lower, "/generated/") {
		return true
	}

	if strings.HasSuffix(lower, "_generated") || strings.HasSuffix(lower, ".pb") {
		return true
	}

	return false
}

// IsImportRelatedError reports whether an error message is about import
// resolution. Those errors are environmental and do not affect the checks.
func IsImportRelatedError(msg string) bool {
	lower := strings.ToLower(msg)

	for _, phrase := range []string{
		"could not import",
		"can't find import",
		"cannot find package",
		"no required module provides",
		"build constraints exclude all go files",
	} {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
