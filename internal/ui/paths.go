// pattern: Functional Core

package ui

import (
	"path/filepath"
	"strings"
)

// FormatPath renders absPath for display relative to baseDir: "." for the
// base itself, "./<rel>" for paths inside it, and absPath unchanged when the
// relative form starts with a dot (a parent reference such as "../x", or a
// dot-named entry) or cannot be computed.
func FormatPath(absPath, baseDir string) string {
	rel, err := filepath.Rel(baseDir, absPath)
	if err != nil {
		return absPath
	}
	if rel == "" || rel == "." {
		return "."
	}
	if strings.HasPrefix(rel, ".") {
		return absPath
	}
	return "./" + rel
}
