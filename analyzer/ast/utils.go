package ast

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ASTFileSuffix is the suffix of ESTree dumps picked up when walking directories.
const ASTFileSuffix = ".ast.json"

// skippedDirs are never descended into when collecting ESTree dumps.
var skippedDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
}

// FindASTFiles expands paths into a sorted, de-duplicated list of ESTree dump
// files. Files named explicitly are kept whatever their suffix; directories
// are walked for files ending in ASTFileSuffix, skipping hidden directories
// and dependency trees.
func FindASTFiles(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // Skip unreadable entries, don't fail entire walk
			}
			if d.IsDir() {
				name := d.Name()
				if path != root && (skippedDirs[name] || strings.HasPrefix(name, ".")) {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(path, ASTFileSuffix) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// RelativePath converts path to one relative to baseDir, falling back to
// the original path if conversion fails.
func RelativePath(path, baseDir string) string {
	if baseDir == "" {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		if rel, err := filepath.Rel(baseDir, abs); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return path
}
