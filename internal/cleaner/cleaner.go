// pattern: Imperative Shell

package cleaner

import (
	"context"

	"cleandeps/internal/discovery"
	"cleandeps/internal/logging"
	"cleandeps/internal/ui"
)

// ProjectScanner finds projects under a root directory.
type ProjectScanner interface {
	Scan(ctx context.Context, rootDir string) (discovery.ScanResult, error)
}

// Cleaner runs one scan-confirm-delete pass.
type Cleaner struct {
	scanner    ProjectScanner
	controller *Controller
	printer    *ui.Printer
	logger     *logging.ScopedLogger
}

// New creates a Cleaner.
func New(scanner ProjectScanner, controller *Controller, printer *ui.Printer, logger *logging.ScopedLogger) *Cleaner {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Cleaner{scanner: scanner, controller: controller, printer: printer, logger: logger}
}

// Run scans rootDir, resolves every project found and prints a summary.
// The returned outcomes cover every project that was decided, even when an
// error stops the run early.
func (c *Cleaner) Run(ctx context.Context, rootDir string) ([]Outcome, error) {
	c.printer.Scanning(rootDir)
	c.logger.Info("scan started", "root", rootDir)

	scan, err := c.scanner.Scan(ctx, rootDir)
	if err != nil {
		return nil, err
	}

	var outcomes []Outcome
	if scan.Empty() {
		c.printer.NoProjects()
	} else {
		outcomes, err = c.controller.Resolve(ctx, scan, rootDir)
		if err != nil {
			c.logger.Error("run aborted", "error", err)
			return outcomes, err
		}
	}

	summary := Summarize(outcomes)
	c.logger.Info("run complete",
		"deleted", summary.Deleted,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"dry_run", summary.DryRun,
	)
	c.printer.Done(summary.Deleted, summary.Skipped, summary.Failed)
	return outcomes, nil
}
