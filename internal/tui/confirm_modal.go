package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Modals render full-screen instead of overlaying the dashboard: nesting
// bordered components over a background color shows artifacts in some
// terminals.

func (m appModel) confirmWording() (title, body string) {
	switch m.focus {
	case secTweets:
		return "Delete tweet", "Delete this tweet? This can't be undone."
	case secQuests:
		return "Delete quest", "Delete this quest? This can't be undone."
	case secCommunity:
		return "Delete highlight", "Delete this community highlight? This can't be undone."
	}
	return "Delete", "Delete this entry?"
}

func (m appModel) renderConfirm(width int) string {
	title, body := m.confirmWording()

	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render("Delete")
	cancel := btnBase.Render("Cancel")
	if m.confirmFocus == confirmFocusConfirm {
		confirm = btnActive.Render("Delete")
	} else {
		cancel = btnActive.Render("Cancel")
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, " ", cancel)

	help := styleMuted().Render("tab: focus   enter: select   y: delete   esc: cancel")
	content := strings.Join([]string{body, "", controls, "", help}, "\n")
	return renderModalBox(width, title, content)
}

func (m appModel) renderFormModal(width int) string {
	f := m.form
	if f == nil {
		return ""
	}
	title := f.section.String()
	switch {
	case m.modal == modalFetch:
		title = "Fetch recent tweets"
	case f.editIndex >= 0:
		title = "Edit " + strings.ToLower(strings.TrimSuffix(title, "s"))
	default:
		title = "Add " + strings.ToLower(strings.TrimSuffix(title, "s"))
	}

	lines := make([]string, 0, len(f.inputs)*2+2)
	for i := range f.inputs {
		label := f.labels[i]
		if i == f.focus {
			lines = append(lines, lipgloss.NewStyle().Foreground(colorAccent).Render(label))
		} else {
			lines = append(lines, styleMuted().Render(label))
		}
		lines = append(lines, fitLine(f.inputs[i].View(), modalBodyWidth(width)))
	}
	lines = append(lines, "", styleMuted().Render("tab: next field   enter: save   esc: cancel"))
	return renderModalBox(width, title, strings.Join(lines, "\n"))
}

func modalBodyWidth(width int) int {
	w := width - 8
	if w < 24 {
		w = 24
	}
	if w > 64 {
		w = 64
	}
	return w
}

func renderModalBox(width int, title, content string) string {
	bodyW := modalBodyWidth(width)
	header := lipgloss.NewStyle().
		Bold(true).
		Width(bodyW).
		Background(colorControlBg).
		Foreground(colorSurfaceFg).
		Padding(0, 1).
		Render(title)
	body := lipgloss.NewStyle().Width(bodyW).Padding(0, 1).Render(content)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Render(header + "\n" + body)
	if width > 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
	}
	return box
}
