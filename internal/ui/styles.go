// pattern: Functional Core

package ui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Themes lists the accepted theme names.
var Themes = []string{"latte", "frappe", "macchiato", "mocha"}

// Styles maps status kinds to catppuccin colors on a given renderer.
type Styles struct {
	flavor   catppuccin.Flavor
	renderer *lipgloss.Renderer
}

// NewStyles builds styles for themeName, rendering through r.
func NewStyles(themeName string, r *lipgloss.Renderer) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Styles{flavor: flavorFromName(themeName), renderer: r}
}

func flavorFromName(name string) catppuccin.Flavor {
	switch name {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	default:
		return catppuccin.Mocha
	}
}

func (s *Styles) fg(c catppuccin.Color) lipgloss.Style {
	return s.renderer.NewStyle().Foreground(lipgloss.Color(c.Hex))
}

// InfoStyle is used for scan start and completion lines.
func (s *Styles) InfoStyle() lipgloss.Style {
	return s.fg(s.flavor.Sky())
}

// SuccessStyle is used for deletions and the empty-result notice.
func (s *Styles) SuccessStyle() lipgloss.Style {
	return s.fg(s.flavor.Green())
}

// PromptStyle is used for confirmation questions.
func (s *Styles) PromptStyle() lipgloss.Style {
	return s.fg(s.flavor.Yellow())
}

// SkipStyle is used for declined projects and groups.
func (s *Styles) SkipStyle() lipgloss.Style {
	return s.fg(s.flavor.Overlay0())
}

// ErrorStyle is used for unreadable directories and failed deletions.
func (s *Styles) ErrorStyle() lipgloss.Style {
	return s.fg(s.flavor.Red())
}

// AccentStyle highlights monorepo roots in group prompts.
func (s *Styles) AccentStyle() lipgloss.Style {
	return s.fg(s.flavor.Mauve()).Bold(true)
}
