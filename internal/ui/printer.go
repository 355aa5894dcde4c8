// pattern: Imperative Shell

package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode controls whether status lines carry ANSI colors.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Printer writes one human-readable status line per event. Paths are
// displayed relative to the base directory via FormatPath.
type Printer struct {
	out     io.Writer
	errOut  io.Writer
	baseDir string
	styles  *Styles
}

// NewPrinter creates a printer writing status lines to out and fatal
// errors to errOut.
func NewPrinter(out, errOut io.Writer, baseDir, theme string, mode ColorMode) *Printer {
	r := lipgloss.NewRenderer(out)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		out:     out,
		errOut:  errOut,
		baseDir: baseDir,
		styles:  NewStyles(theme, r),
	}
}

// Path formats p relative to the printer's base directory.
func (p *Printer) Path(path string) string {
	return FormatPath(path, p.baseDir)
}

func (p *Printer) line(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(p.out, style.Render(fmt.Sprintf(format, args...)))
}

// Scanning announces the start of a scan. The root is shown in full.
func (p *Printer) Scanning(root string) {
	p.line(p.styles.InfoStyle(), "Scanning: %s", root)
}

// ScanSkipped reports a directory that could not be read.
func (p *Printer) ScanSkipped(dir string, err error) {
	p.line(p.styles.ErrorStyle(), "[skip] cannot access %s: %v", dir, err)
}

// NoProjects reports an empty scan result.
func (p *Printer) NoProjects() {
	p.line(p.styles.SuccessStyle(), "No projects with node_modules found.")
}

// Deleted reports a removed dependency directory.
func (p *Printer) Deleted(target string) {
	p.line(p.styles.SuccessStyle(), "[deleted] %s", p.Path(target))
}

// DeleteFailed reports a dependency directory that could not be removed.
func (p *Printer) DeleteFailed(target string, err error) {
	p.line(p.styles.ErrorStyle(), "[failed] deleting %s: %v", p.Path(target), err)
}

// WouldDelete reports a dependency directory a dry run left in place.
func (p *Printer) WouldDelete(target string) {
	p.line(p.styles.SkipStyle(), "[dry-run] would delete %s", p.Path(target))
}

// Skipped reports a declined standalone project.
func (p *Printer) Skipped(dir string) {
	p.line(p.styles.SkipStyle(), "[skip] %s", p.Path(dir))
}

// GroupSkipped reports a declined monorepo group.
func (p *Printer) GroupSkipped(root string, members int) {
	p.line(p.styles.SkipStyle(), "[skip] monorepo %s (%d %s)", p.Path(root), members, plural(members, "package", "packages"))
}

// Done reports completion with per-outcome counts.
func (p *Printer) Done(deleted, skipped, failed int) {
	p.line(p.styles.InfoStyle(), "Done. deleted %d, skipped %d, failed %d.", deleted, skipped, failed)
}

// Fatal writes a top-level failure to the error stream.
func (p *Printer) Fatal(err error) {
	fmt.Fprintln(p.errOut, p.styles.ErrorStyle().Render(fmt.Sprintf("Failed: %v", err)))
}

// ProjectPrompt is the question asked for a standalone project.
func (p *Printer) ProjectPrompt(dir string) string {
	return p.styles.PromptStyle().Render(
		fmt.Sprintf("Found node_modules in %s, delete it? (Y/n): ", p.Path(dir)))
}

// GroupPrompt is the question asked once for a whole monorepo.
func (p *Printer) GroupPrompt(root string, members int) string {
	prompt := p.styles.PromptStyle()
	return prompt.Render("Found monorepo ") +
		p.styles.AccentStyle().Render(p.Path(root)) +
		prompt.Render(fmt.Sprintf(" with %d %s containing node_modules, delete all? (Y/n): ",
			members, plural(members, "package", "packages")))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
