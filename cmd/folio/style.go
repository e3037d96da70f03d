package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thatcatcamp/folio/internal/themes"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// swatch renders text on bg in the given colors. The foreground falls back
// to the readable extreme when fg is empty.
func swatch(text, fg, bg string) string {
	if fg == "" {
		fg = themes.PickOnColor(bg, themes.MinContrast)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(text)
}
