// pattern: Imperative Shell
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"cleandeps/internal/config"
	"cleandeps/internal/discovery"
	"cleandeps/internal/instance"
	"cleandeps/internal/logging"
)

// Options carries the global flag values commands need.
type Options struct {
	ConfigDir string
	RootDir   string
	Logger    *logging.ScopedLogger
}

// BuildApp creates and configures the CLI application with all commands.
func BuildApp(version string, opts Options) *App {
	app := NewApp(version)

	app.AddCommand(&Command{
		Name:    "list",
		Summary: "Print projects with node_modules as JSON, deleting nothing",
		Usage:   "Usage: cleandeps [--dir DIR] list",
		Run: func(args []string) error {
			return runListCommand(context.Background(), app.stdout, opts)
		},
	})

	app.AddCommand(&Command{
		Name:    "unlock",
		Summary: "Remove a stale lock file left by a crashed run",
		Usage:   "Usage: cleandeps unlock",
		Run: func(args []string) error {
			return runUnlockCommand(app.stdout, opts.ConfigDir)
		},
	})

	app.AddCommand(&Command{
		Name:    "version",
		Summary: "Print version and exit",
		Usage:   "Usage: cleandeps version",
		Run: func(args []string) error {
			fmt.Fprintln(app.stdout, version)
			return nil
		},
	})

	return app
}

// ListedProject is one entry of the list command output.
type ListedProject struct {
	Path              string   `json:"path"`
	DependencyDir     string   `json:"dependency_dir"`
	Monorepo          bool     `json:"monorepo"`
	Group             string   `json:"group,omitempty"`
	Marker            string   `json:"marker,omitempty"`
	WorkspacePackages []string `json:"workspace_packages,omitempty"`
}

// ListOutput is the document printed by the list command.
type ListOutput struct {
	Root     string          `json:"root"`
	Projects []ListedProject `json:"projects"`
	Skipped  []string        `json:"skipped,omitempty"`
}

// runListCommand scans opts.RootDir and writes the result as JSON. Each
// entry names the workspace root a clean run would group it under.
func runListCommand(ctx context.Context, w io.Writer, opts Options) error {
	scanner := discovery.NewScanner(opts.Logger)
	result, err := scanner.Scan(ctx, opts.RootDir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", opts.RootDir, err)
	}

	detector := discovery.NewMonorepoDetector(opts.Logger)
	markers := make(map[string]discovery.Marker)
	markerFor := func(dir string) discovery.Marker {
		m, ok := markers[dir]
		if !ok {
			m = detector.Detect(dir)
			markers[dir] = m
		}
		return m
	}

	out := ListOutput{Root: opts.RootDir, Projects: []ListedProject{}}
	for _, p := range result.Projects {
		entry := ListedProject{
			Path:          p.Path,
			DependencyDir: p.DependencyPath(),
		}
		root, ok := discovery.NearestRoot(p.Path, opts.RootDir, func(dir string) bool {
			return markerFor(dir) != discovery.MarkerNone
		})
		if ok {
			entry.Monorepo = true
			entry.Group = root
			entry.Marker = string(markerFor(root))
			if root == p.Path {
				entry.WorkspacePackages = discovery.WorkspacePackages(root)
			}
		}
		out.Projects = append(out.Projects, entry)
	}
	for _, s := range result.Skipped {
		out.Skipped = append(out.Skipped, s.Path)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// runUnlockCommand removes a stale lock file.
func runUnlockCommand(w io.Writer, configDir string) error {
	dataDir := config.ResolveDataDir(configDir)
	if err := instance.Unlock(dataDir); err != nil {
		return fmt.Errorf("%w; stop it first", err)
	}
	fmt.Fprintln(w, "Removed stale lock file.")
	return nil
}
