// pattern: Imperative Shell

package cleaner

import (
	"context"
	"fmt"

	"cleandeps/internal/discovery"
	"cleandeps/internal/logging"
	"cleandeps/internal/prompt"
	"cleandeps/internal/ui"
)

// MonorepoChecker decides whether a directory is a workspace root.
type MonorepoChecker interface {
	IsMonorepoRoot(dir string) bool
}

// Controller asks at most one confirmation per monorepo group or standalone
// project and drives the Remover for confirmed targets.
type Controller struct {
	detector  MonorepoChecker
	confirmer prompt.Confirmer
	remover   *Remover
	printer   *ui.Printer
	logger    *logging.ScopedLogger
}

// NewController wires a controller.
func NewController(detector MonorepoChecker, confirmer prompt.Confirmer, remover *Remover, printer *ui.Printer, logger *logging.ScopedLogger) *Controller {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Controller{
		detector:  detector,
		confirmer: confirmer,
		remover:   remover,
		printer:   printer,
		logger:    logger,
	}
}

// Resolve walks scan.Projects in order. A project under a monorepo root
// (itself or its nearest ancestor up to rootDir carrying a workspace marker)
// is decided together with every other unprocessed project under that root
// in a single prompt; all of them are marked processed before the prompt.
// Other projects get one prompt each. The returned error is a confirmer
// failure or context cancellation; deletion failures are recorded in the
// outcomes instead.
func (c *Controller) Resolve(ctx context.Context, scan discovery.ScanResult, rootDir string) ([]Outcome, error) {
	processed := make(processedSet)
	roots := make(map[string]bool)
	var outcomes []Outcome

	for _, project := range scan.Projects {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		if processed.has(project.Path) {
			continue
		}

		if root, ok := c.monorepoRoot(project.Path, rootDir, roots); ok && !processed.has(root) {
			group := collectGroup(root, scan.Projects, processed)
			processed.add(root)
			for _, m := range group.Members {
				processed.add(m.Path)
			}

			groupOutcomes, err := c.resolveGroup(group)
			outcomes = append(outcomes, groupOutcomes...)
			if err != nil {
				return outcomes, err
			}
			continue
		}

		processed.add(project.Path)
		outcome, err := c.resolveProject(project)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func (c *Controller) resolveGroup(g Group) ([]Outcome, error) {
	logger := c.logger.With("root", g.Root, "members", len(g.Members))

	ok, err := c.confirmer.Confirm(c.printer.GroupPrompt(g.Root, len(g.Members)))
	if err != nil {
		return nil, fmt.Errorf("confirm monorepo %s: %w", g.Root, err)
	}

	outcomes := make([]Outcome, 0, len(g.Members))
	if !ok {
		logger.Info("monorepo skipped")
		c.printer.GroupSkipped(g.Root, len(g.Members))
		for _, m := range g.Members {
			outcomes = append(outcomes, Outcome{Project: m.Path, Group: g.Root, Action: ActionSkipped})
		}
		return outcomes, nil
	}

	logger.Info("monorepo confirmed")
	for _, m := range g.Members {
		outcome := outcomeFor(m.Path, c.remover.Remove(m.Path))
		outcome.Group = g.Root
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

func (c *Controller) resolveProject(p discovery.Project) (Outcome, error) {
	ok, err := c.confirmer.Confirm(c.printer.ProjectPrompt(p.Path))
	if err != nil {
		return Outcome{}, fmt.Errorf("confirm %s: %w", p.Path, err)
	}
	if !ok {
		c.logger.Info("project skipped", "dir", p.Path)
		c.printer.Skipped(p.Path)
		return Outcome{Project: p.Path, Action: ActionSkipped}, nil
	}
	return outcomeFor(p.Path, c.remover.Remove(p.Path)), nil
}

// monorepoRoot finds the nearest workspace root for dir, caching each
// detector answer for the rest of the run.
func (c *Controller) monorepoRoot(dir, rootDir string, cache map[string]bool) (string, bool) {
	return discovery.NearestRoot(dir, rootDir, func(candidate string) bool {
		isRoot, seen := cache[candidate]
		if !seen {
			isRoot = c.detector.IsMonorepoRoot(candidate)
			cache[candidate] = isRoot
		}
		return isRoot
	})
}

func outcomeFor(project string, r Result) Outcome {
	switch {
	case r.Err != nil:
		return Outcome{Project: project, Action: ActionFailed, Err: r.Err}
	case r.DryRun:
		return Outcome{Project: project, Action: ActionDryRun}
	default:
		return Outcome{Project: project, Action: ActionDeleted}
	}
}
