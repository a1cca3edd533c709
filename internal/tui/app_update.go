package tui

import (
	"strconv"

	"promodash/internal/dashboard"
	"promodash/internal/store"
	"promodash/internal/twitter"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.seenWindowSize = true
		return m, nil

	case fetchResultMsg:
		m.fetchBusy = false
		if msg.err != nil {
			m.status = "Fetch failed: " + msg.err.Error()
			return m, nil
		}
		m.st.ReplaceTweets(msg.tweets)
		m.status = "Fetched " + strconv.Itoa(len(msg.tweets)) + " tweets"
		return m, nil

	case tea.KeyMsg:
		switch m.modal {
		case modalForm, modalFetch:
			return m.updateFormKey(msg)
		case modalConfirmDelete:
			return m.updateConfirmKey(msg)
		}
		return m.updateBrowseKey(msg)
	}
	return m, nil
}

func (m appModel) updateBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "tab", "down", "j":
		m.focus = (m.focus + 1) % 3
		m.status = ""
	case "shift+tab", "up", "k":
		m.focus = (m.focus + 2) % 3
		m.status = ""

	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)

	case "v":
		switch m.focus {
		case secTweets:
			m.st.SetTweetView(toggleView(m.st.TweetView))
		case secCommunity:
			m.st.SetCommunityView(toggleView(m.st.CommunityView))
		}

	case "a":
		if m.settings.Mode == store.ModeAPI && m.focus == secTweets {
			m.status = "API mode: tweets come from fetch (press f)"
			return m, nil
		}
		m.openAddForm()

	case "e":
		if m.sectionLen(m.focus) == 0 {
			return m, nil
		}
		if !m.openEditForm() {
			m.status = "Fetched tweets can't be edited"
		}

	case "d", "backspace":
		if m.sectionLen(m.focus) == 0 {
			return m, nil
		}
		if m.focus == secTweets && !m.st.Tweets[m.selected()].Editable() {
			m.status = "Fetched tweets can't be deleted"
			return m, nil
		}
		m.modal = modalConfirmDelete
		m.confirmFocus = confirmFocusConfirm

	case "m":
		if m.settings.Mode == store.ModeAPI {
			m.settings.Mode = store.ModeManual
		} else {
			m.settings.Mode = store.ModeAPI
		}
		m.persistSettings()

	case "t":
		if m.settings.Theme == store.ThemeDark {
			m.settings.Theme = store.ThemeLight
		} else {
			m.settings.Theme = store.ThemeDark
		}
		m.persistSettings()

	case "f":
		if m.settings.Mode != store.ModeAPI {
			m.status = "Switch to API mode first (press m)"
			return m, nil
		}
		m.openFetchForm()
	}
	return m, nil
}

func toggleView(v dashboard.ViewMode) dashboard.ViewMode {
	if v == dashboard.ViewCarousel {
		return dashboard.ViewGrid
	}
	return dashboard.ViewCarousel
}

func (m *appModel) openFetchForm() {
	f := &formState{section: secTweets, editIndex: dashboard.NoEdit}
	f.labels = []string{"Username", "Count (1-10)"}
	f.inputs = append(f.inputs,
		newField("X username", "", 60),
		newField(strconv.Itoa(twitter.DefaultCount), "", 2),
	)
	f.focusField(0)
	m.form = f
	m.modal = modalFetch
}

func (m appModel) updateFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	if f == nil {
		m.closeModal()
		return m, nil
	}
	switch msg.String() {
	case "esc", "ctrl+g":
		m.cancelForm()
		return m, nil
	case "tab", "down":
		f.next()
		return m, nil
	case "shift+tab", "up":
		f.prev()
		return m, nil
	case "enter":
		if m.modal == modalFetch {
			username := f.value(0)
			count, err := strconv.Atoi(f.value(1))
			if err != nil {
				count = twitter.DefaultCount
			}
			m.closeModal()
			m.fetchBusy = true
			m.status = "Fetching…"
			return m, fetchRecentCmd(m.settings.BackendURL, username, count)
		}
		m.submitForm()
		return m, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g", "n":
		m.closeModal()
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			m.deleteSelected()
		}
		m.closeModal()
	case "y":
		m.deleteSelected()
		m.closeModal()
	}
	return m, nil
}
