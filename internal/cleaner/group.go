// pattern: Functional Core

package cleaner

import "cleandeps/internal/discovery"

// Group is a monorepo root and the scanned projects at or below it.
type Group struct {
	Root    string
	Members []discovery.Project // In scan order
}

// collectGroup returns the projects that are root or its descendants,
// leaving out any already in processed.
func collectGroup(root string, projects []discovery.Project, processed processedSet) Group {
	g := Group{Root: root}
	for _, p := range projects {
		if processed.has(p.Path) {
			continue
		}
		if discovery.Within(root, p.Path) {
			g.Members = append(g.Members, p)
		}
	}
	return g
}

// processedSet holds paths already resolved during one Resolve call.
type processedSet map[string]struct{}

func (s processedSet) has(path string) bool {
	_, ok := s[path]
	return ok
}

func (s processedSet) add(paths ...string) {
	for _, p := range paths {
		s[p] = struct{}{}
	}
}
