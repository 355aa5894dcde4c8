// pattern: Imperative Shell

package discovery

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"cleandeps/internal/logging"
)

// Marker identifies which check classified a directory as a monorepo root.
type Marker string

const (
	MarkerNone          Marker = ""
	MarkerPNPMWorkspace Marker = "pnpm-workspace"
	MarkerWorkspaces    Marker = "workspaces"
	MarkerLerna         Marker = "lerna"
)

// MonorepoDetector decides whether a directory is a workspace root.
type MonorepoDetector struct {
	logger *logging.ScopedLogger
}

// NewMonorepoDetector creates a detector. A nil logger discards output.
func NewMonorepoDetector(logger *logging.ScopedLogger) *MonorepoDetector {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &MonorepoDetector{logger: logger}
}

// IsMonorepoRoot reports whether dir carries a recognized workspace marker.
func (d *MonorepoDetector) IsMonorepoRoot(dir string) bool {
	return d.Detect(dir) != MarkerNone
}

// Detect runs the checks in order and returns the first matching marker:
// pnpm-workspace.yaml, a truthy workspaces or pnpm.workspaces field in
// package.json, then lerna.json. Only existence and presence are checked.
func (d *MonorepoDetector) Detect(dir string) Marker {
	if fileExists(filepath.Join(dir, PNPMWorkspaceFile)) {
		return MarkerPNPMWorkspace
	}
	if manifestDeclaresWorkspaces(filepath.Join(dir, ManifestFile), d.logger) {
		return MarkerWorkspaces
	}
	if fileExists(filepath.Join(dir, LernaConfigFile)) {
		return MarkerLerna
	}
	return MarkerNone
}

// manifestDeclaresWorkspaces reads a package.json and checks for a truthy
// "workspaces" or "pnpm.workspaces" field. Unreadable or malformed
// manifests never match.
func manifestDeclaresWorkspaces(manifestPath string, logger *logging.ScopedLogger) bool {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return false
	}

	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		logger.Debug("ignoring malformed manifest", "path", manifestPath, "error", err)
		return false
	}

	if truthy(manifest["workspaces"]) {
		return true
	}
	if pnpm, ok := manifest["pnpm"].(map[string]any); ok && truthy(pnpm["workspaces"]) {
		return true
	}
	return false
}

// truthy mirrors JSON value truthiness: null, false, 0 and "" are false,
// everything else (including empty arrays and objects) is true.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		return true
	}
}

// WorkspacePackages returns the package globs a workspace root declares,
// read from pnpm-workspace.yaml or the manifest's workspaces field (array
// form or {"packages": [...]} form). It is informational only and returns
// nil when nothing can be read.
func WorkspacePackages(dir string) []string {
	if data, err := os.ReadFile(filepath.Join(dir, PNPMWorkspaceFile)); err == nil {
		var ws struct {
			Packages []string `yaml:"packages"`
		}
		if err := yaml.Unmarshal(data, &ws); err == nil && len(ws.Packages) > 0 {
			return ws.Packages
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil
	}
	var manifest struct {
		Workspaces json.RawMessage `json:"workspaces"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil || len(manifest.Workspaces) == 0 {
		return nil
	}

	var globs []string
	if err := json.Unmarshal(manifest.Workspaces, &globs); err == nil {
		return globs
	}
	var nested struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(manifest.Workspaces, &nested); err == nil {
		return nested.Packages
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
