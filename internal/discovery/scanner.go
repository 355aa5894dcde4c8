// pattern: Imperative Shell

package discovery

import (
	"context"
	"os"
	"path/filepath"

	"cleandeps/internal/logging"
)

// SkipFunc is called for every directory the scanner cannot read.
type SkipFunc func(dir string, err error)

// Scanner discovers projects with installed dependencies under a root directory.
type Scanner struct {
	logger *logging.ScopedLogger
	onSkip SkipFunc
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithSkipHandler registers a callback for unreadable directories.
func WithSkipHandler(fn SkipFunc) ScannerOption {
	return func(s *Scanner) {
		s.onSkip = fn
	}
}

// NewScanner creates a new project scanner.
func NewScanner(logger *logging.ScopedLogger, opts ...ScannerOption) *Scanner {
	if logger == nil {
		logger = logging.NopLogger()
	}
	s := &Scanner{logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks rootDir depth-first using a LIFO frontier and returns every
// directory containing both ManifestFile and DependencyDir as direct children.
// DependencyDir and VCSDir are never descended into. Unreadable directories
// are reported and skipped; only context cancellation aborts the walk.
func (s *Scanner) Scan(ctx context.Context, rootDir string) (ScanResult, error) {
	var result ScanResult
	stack := []string{rootDir}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(current)
		if err != nil {
			s.logger.Warn("skipping unreadable directory", "dir", current, "error", err)
			result.Skipped = append(result.Skipped, Skipped{Path: current, Err: err})
			if s.onSkip != nil {
				s.onSkip(current, err)
			}
			continue
		}

		if isProject(entries) {
			s.logger.Debug("found project", "dir", current)
			result.Projects = append(result.Projects, Project{Path: current})
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if entry.Name() == DependencyDir || entry.Name() == VCSDir {
				continue
			}
			stack = append(stack, filepath.Join(current, entry.Name()))
		}
	}

	s.logger.Info("scan finished", "root", rootDir, "projects", len(result.Projects), "skipped", len(result.Skipped))
	return result, nil
}

// isProject checks for a regular manifest file and a dependency directory
// among the immediate entries of a directory.
func isProject(entries []os.DirEntry) bool {
	var hasManifest, hasDeps bool
	for _, entry := range entries {
		switch {
		case entry.Name() == ManifestFile && entry.Type().IsRegular():
			hasManifest = true
		case entry.Name() == DependencyDir && entry.IsDir():
			hasDeps = true
		}
	}
	return hasManifest && hasDeps
}

func joinDependencyDir(projectDir string) string {
	return filepath.Join(projectDir, DependencyDir)
}
