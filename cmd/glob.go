// Copyright © 2026 The clang-complete authors

package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// candidateExts are the extensions picked up when expanding "dir/...".
var candidateExts = map[string]bool{
	".txt":  true,
	".out":  true,
	".yaml": true,
	".yml":  true,
	".json": true,
}

// expandArgs expands arguments, resolving patterns ending with "/..." to all
// candidate files found recursively under the given directory. Non-pattern
// arguments pass through unchanged. Paths matching excludes are dropped.
func expandArgs(args []string, excludes []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if dir, ok := strings.CutSuffix(arg, "/..."); ok {
			if dir == "" {
				dir = "."
			}
			files, err := findCandidateFiles(dir)
			if err != nil {
				return nil, errors.Wrapf(err, "expanding %s", arg)
			}
			out = append(out, files...)
		} else {
			out = append(out, arg)
		}
	}
	return filterExcludes(out, excludes), nil
}

func findCandidateFiles(root string) ([]string, error) {
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if candidateExts[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// filterExcludes drops paths matching any of the exclude patterns.
func filterExcludes(paths []string, excludes []string) []string {
	if len(excludes) == 0 {
		return paths
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !matchesAny(p, excludes) {
			out = append(out, p)
		}
	}
	return out
}

// matchesAny reports whether path, its base name or any of its directory
// components matches one of patterns.
func matchesAny(path string, patterns []string) bool {
	components := splitPath(path)
	for _, pat := range patterns {
		if ok, _ := filepath.Match(pat, path); ok {
			return true
		}
		for _, c := range components {
			if ok, _ := filepath.Match(pat, c); ok {
				return true
			}
		}
	}
	return false
}

func splitPath(path string) []string {
	return strings.Split(filepath.ToSlash(filepath.Clean(path)), "/")
}
