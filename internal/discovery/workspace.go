// pattern: Functional Core

package discovery

import (
	"os"
	"path/filepath"
	"strings"
)

// Within reports whether path is root or lies below it, by path prefix.
func Within(root, path string) bool {
	if path == root {
		return true
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}
	return strings.HasPrefix(path, prefix)
}

// Ancestors returns dir and each parent up to and including stop, nearest
// first. If dir is not within stop only dir itself is returned.
func Ancestors(dir, stop string) []string {
	dirs := []string{dir}
	if !Within(stop, dir) {
		return dirs
	}
	for d := dir; d != stop; {
		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		dirs = append(dirs, parent)
		d = parent
	}
	return dirs
}

// NearestRoot returns the closest of dir and its ancestors up to stop for
// which isRoot holds.
func NearestRoot(dir, stop string, isRoot func(string) bool) (string, bool) {
	for _, candidate := range Ancestors(dir, stop) {
		if isRoot(candidate) {
			return candidate, true
		}
	}
	return "", false
}
