// pattern: Imperative Shell

package cleaner

import (
	"os"
	"path/filepath"

	"cleandeps/internal/discovery"
	"cleandeps/internal/logging"
	"cleandeps/internal/ui"
)

// FileOps abstracts the recursive delete for testability.
type FileOps interface {
	RemoveAll(path string) error
}

type osFileOps struct{}

func (osFileOps) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Result is the outcome of removing one dependency directory.
type Result struct {
	Target string
	Err    error
	DryRun bool
}

// OK reports whether the removal succeeded or was simulated.
func (r Result) OK() bool {
	return r.Err == nil
}

// Remover deletes the dependency directory of a project, best effort.
type Remover struct {
	fs      FileOps
	printer *ui.Printer
	logger  *logging.ScopedLogger
	dryRun  bool
}

// RemoverOption configures a Remover.
type RemoverOption func(*Remover)

// WithFileOps replaces the filesystem used for deletion.
func WithFileOps(fs FileOps) RemoverOption {
	return func(r *Remover) {
		r.fs = fs
	}
}

// WithDryRun makes the remover report targets without deleting them.
func WithDryRun(dryRun bool) RemoverOption {
	return func(r *Remover) {
		r.dryRun = dryRun
	}
}

// NewRemover creates a remover reporting through printer.
func NewRemover(printer *ui.Printer, logger *logging.ScopedLogger, opts ...RemoverOption) *Remover {
	if logger == nil {
		logger = logging.NopLogger()
	}
	r := &Remover{fs: osFileOps{}, printer: printer, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Remove force-deletes <projectDir>/node_modules. A missing target counts as
// success. Failures are reported and returned in the Result, never raised,
// so a batch always continues to the next project.
func (r *Remover) Remove(projectDir string) Result {
	target := filepath.Join(projectDir, discovery.DependencyDir)

	if r.dryRun {
		r.logger.Info("dry run, not deleting", "target", target)
		r.printer.WouldDelete(target)
		return Result{Target: target, DryRun: true}
	}

	if err := r.fs.RemoveAll(target); err != nil {
		r.logger.Error("delete failed", "target", target, "error", err)
		r.printer.DeleteFailed(target, err)
		return Result{Target: target, Err: err}
	}

	r.logger.Info("deleted", "target", target)
	r.printer.Deleted(target)
	return Result{Target: target}
}
