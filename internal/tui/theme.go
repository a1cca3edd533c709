package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The TUI must stay readable on both light and dark terminal backgrounds,
// so every semantic color is an AdaptiveColor pair.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorAccent     lipgloss.TerminalColor = ac("27", "39")
	colorDanger     lipgloss.TerminalColor = ac("160", "203")
	colorSuccess    lipgloss.TerminalColor = ac("28", "77")
	colorCardBorder lipgloss.TerminalColor = ac("250", "243")
	colorFocusedBdr lipgloss.TerminalColor = ac("232", "255")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorControlBg  lipgloss.TerminalColor = ac("252", "235")
	colorSurfaceFg  lipgloss.TerminalColor = ac("235", "252")
)

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleSectionTitle(focused bool) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true)
	if focused {
		return st.Foreground(colorAccent)
	}
	return st.Foreground(colorMuted)
}

func styleCard(focused bool) lipgloss.Style {
	border := colorCardBorder
	if focused {
		border = colorFocusedBdr
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// applyColorProfilePreference honors NO_COLOR and otherwise follows the
// terminal's capabilities. CLICOLOR is deliberately ignored for the
// interactive TUI.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}
