// Package render holds lipgloss styles and row renderers for the TUI.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/pairup/internal/settings"
)

// Palette is the set of styles for one appearance.
type Palette struct {
	Dark      bool
	Title     lipgloss.Style
	TabActive lipgloss.Style
	Tab       lipgloss.Style
	Badge     lipgloss.Style
	Row       lipgloss.Style
	Selected  lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Dialog    lipgloss.Style
}

// PaletteFor resolves a theme override. ThemeSystem follows the terminal
// background as reported by lipgloss.
func PaletteFor(theme settings.Theme) Palette {
	switch theme {
	case settings.ThemeDark:
		return newPalette(true)
	case settings.ThemeLight:
		return newPalette(false)
	default:
		return newPalette(lipgloss.HasDarkBackground())
	}
}

func newPalette(dark bool) Palette {
	fg, muted, accent, selBg := lipgloss.Color("235"), lipgloss.Color("245"), lipgloss.Color("162"), lipgloss.Color("254")
	if dark {
		fg, muted, accent, selBg = lipgloss.Color("252"), lipgloss.Color("241"), lipgloss.Color("212"), lipgloss.Color("237")
	}
	return Palette{
		Dark:      dark,
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		TabActive: lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true).Padding(0, 1),
		Tab:       lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		Badge:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("197")).Padding(0, 1),
		Row:       lipgloss.NewStyle().Foreground(fg),
		Selected:  lipgloss.NewStyle().Foreground(fg).Background(selBg).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Accent:    lipgloss.NewStyle().Foreground(accent),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Dialog:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 2),
	}
}
