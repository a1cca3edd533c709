package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func Run(dir string) error {
	applyColorProfilePreference()
	m := newAppModel(dir)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
