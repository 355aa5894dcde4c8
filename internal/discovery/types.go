// pattern: Functional Core

package discovery

const (
	// ManifestFile is the package metadata file that marks a project root.
	ManifestFile = "package.json"
	// DependencyDir holds installed third-party packages and is the deletion target.
	DependencyDir = "node_modules"
	// VCSDir is never descended into.
	VCSDir = ".git"

	// PNPMWorkspaceFile marks a pnpm workspace root.
	PNPMWorkspaceFile = "pnpm-workspace.yaml"
	// LernaConfigFile marks a lerna monorepo root.
	LernaConfigFile = "lerna.json"
)

// Project is a directory found during scanning that directly contains both
// a manifest file and an installed dependency directory.
type Project struct {
	Path string // Absolute path to the project directory
}

// DependencyPath returns the installed dependency directory of the project.
func (p Project) DependencyPath() string {
	return joinDependencyDir(p.Path)
}

// ScanResult is the outcome of one traversal.
type ScanResult struct {
	Projects []Project // In traversal order (LIFO frontier), not sorted
	Skipped  []Skipped // Directories that could not be read
}

// Skipped records a directory the scanner could not list.
type Skipped struct {
	Path string
	Err  error
}

// Paths returns the project paths in scan order.
func (r ScanResult) Paths() []string {
	paths := make([]string, len(r.Projects))
	for i, p := range r.Projects {
		paths[i] = p.Path
	}
	return paths
}

// Empty reports whether no projects were found.
func (r ScanResult) Empty() bool {
	return len(r.Projects) == 0
}
