package oas2pdf

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// DiscoverSpecs returns every spec file under dir matching the recognized
// extensions, deduplicated by absolute path and sorted lexicographically so
// repeated runs process files in the same order. Without recursive only the
// top-level directory is scanned.
func DiscoverSpecs(dir string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSourceDir, dir)
	}

	seen := make(map[string]bool)
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if !isSpecFile(path) {
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", path, err)
		}
		seen[abs] = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	specs := make([]string, 0, len(seen))
	for path := range seen {
		specs = append(specs, path)
	}
	sort.Strings(specs)
	return specs, nil
}

// isSpecFile reports whether the path has a recognized spec extension.
func isSpecFile(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range specExtensions {
		if ext == want {
			return true
		}
	}
	return false
}

// baseName returns the file name with its extension stripped; output
// artifacts are named after it.
func baseName(path string) string {
	name := filepath.Base(path)
	return name[:len(name)-len(filepath.Ext(name))]
}
