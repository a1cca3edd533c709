package tui

import (
	"strconv"
	"strings"

	"promodash/internal/dashboard"
	"promodash/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
)

type section int

const (
	secTweets section = iota
	secQuests
	secCommunity
)

func (s section) String() string {
	switch s {
	case secTweets:
		return "Tweets"
	case secQuests:
		return "Quests"
	case secCommunity:
		return "Community"
	}
	return ""
}

type modalKind int

const (
	modalNone modalKind = iota
	modalForm
	modalConfirmDelete
	modalFetch
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// formState is a stack of labelled text inputs driving both add and edit.
// editIndex is dashboard.NoEdit for add.
type formState struct {
	section   section
	editIndex int
	labels    []string
	inputs    []textinput.Model
	focus     int
}

func (f *formState) focusField(i int) {
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	f.focus = i
}

func (f *formState) next() { f.focusField((f.focus + 1) % len(f.inputs)) }

func (f *formState) prev() {
	f.focusField((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *formState) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *formState) intValue(i int) int {
	n, err := strconv.Atoi(f.value(i))
	if err != nil {
		return 0
	}
	return n
}

func newField(placeholder, value string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.SetValue(value)
	return in
}

type appModel struct {
	dir      string
	st       *dashboard.State
	settings store.Settings

	width  int
	height int
	// The first WindowSizeMsg is initial sizing, not a user resize.
	seenWindowSize bool

	focus       section
	questCursor int

	modal        modalKind
	form         *formState
	confirmFocus confirmModalFocus

	fetchBusy bool
	status    string
	quitting  bool
}

func newAppModel(dir string) appModel {
	s := store.Store{Dir: dir}
	return appModel{
		dir:      dir,
		st:       dashboard.Load(s),
		settings: s.LoadSettings(),
	}
}

func (m *appModel) persistSettings() {
	_ = store.Store{Dir: m.dir}.SaveSettings(m.settings)
}

// selected returns the cursor position for the focused section.
func (m *appModel) selected() int {
	switch m.focus {
	case secTweets:
		return m.st.TweetCarousel.Index
	case secQuests:
		return m.questCursor
	case secCommunity:
		return m.st.CommunityCarousel.Index
	}
	return 0
}

func (m *appModel) sectionLen(s section) int {
	switch s {
	case secTweets:
		return len(m.st.Tweets)
	case secQuests:
		return len(m.st.Quests)
	case secCommunity:
		return len(m.st.Community)
	}
	return 0
}

func (m *appModel) moveCursor(delta int) {
	switch m.focus {
	case secTweets:
		if delta > 0 {
			m.st.TweetCarousel.Next(len(m.st.Tweets))
		} else {
			m.st.TweetCarousel.Prev(len(m.st.Tweets))
		}
	case secQuests:
		m.questCursor = clampCursor(m.questCursor+delta, len(m.st.Quests))
	case secCommunity:
		if delta > 0 {
			m.st.CommunityCarousel.Next(len(m.st.Community))
		} else {
			m.st.CommunityCarousel.Prev(len(m.st.Community))
		}
	}
}

func clampCursor(i, n int) int {
	if n <= 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// -- form builders --

func (m *appModel) openAddForm() {
	f := &formState{section: m.focus, editIndex: dashboard.NoEdit}
	switch m.focus {
	case secTweets:
		f.labels = []string{"Text", "Date (YYYY-MM-DD)", "Likes", "Retweets", "Replies"}
		f.inputs = []textinput.Model{
			newField("What happened?", "", 280),
			newField("2026-01-31", "", 10),
			newField("0", "", 8),
			newField("0", "", 8),
			newField("0", "", 8),
		}
	case secQuests:
		f.labels = []string{"Name", "Date (YYYY-MM-DD)", "Progress %"}
		f.inputs = []textinput.Model{
			newField("Quest name", "", 120),
			newField("2026-01-31", "", 10),
			newField("0", "", 3),
		}
	case secCommunity:
		f.labels = []string{"Text", "Role badge", "Top contributor (y/n)"}
		f.inputs = []textinput.Model{
			newField("Community highlight", "", 280),
			newField("Moderator", "", 60),
			newField("n", "", 1),
		}
	}
	f.focusField(0)
	m.form = f
	m.modal = modalForm
}

func (m *appModel) openEditForm() bool {
	i := m.selected()
	f := &formState{section: m.focus, editIndex: i}
	switch m.focus {
	case secTweets:
		d, ok := m.st.BeginEditTweet(i)
		if !ok {
			return false
		}
		f.labels = []string{"Text", "Date (YYYY-MM-DD)", "Likes", "Retweets", "Replies"}
		f.inputs = []textinput.Model{
			newField("", d.Text, 280),
			newField("", d.Date, 10),
			newField("", strconv.Itoa(d.Likes), 8),
			newField("", strconv.Itoa(d.Retweets), 8),
			newField("", strconv.Itoa(d.Replies), 8),
		}
	case secQuests:
		d, ok := m.st.BeginEditQuest(i)
		if !ok {
			return false
		}
		f.labels = []string{"Name", "Date (YYYY-MM-DD)", "Progress %"}
		f.inputs = []textinput.Model{
			newField("", d.Name, 120),
			newField("", d.Date, 10),
			newField("", strconv.Itoa(d.Percent), 3),
		}
	case secCommunity:
		d, ok := m.st.BeginEditCommunity(i)
		if !ok {
			return false
		}
		yn := "n"
		if d.TopContributor {
			yn = "y"
		}
		f.labels = []string{"Text", "Role badge", "Top contributor (y/n)"}
		f.inputs = []textinput.Model{
			newField("", d.Text, 280),
			newField("", d.RoleBadge, 60),
			newField("", yn, 1),
		}
	}
	f.focusField(0)
	m.form = f
	m.modal = modalForm
	return true
}

// submitForm maps the input stack back into a draft and commits it. The
// image field is absent in the TUI, so edits keep the stored image via the
// collection's merge rule.
func (m *appModel) submitForm() {
	f := m.form
	if f == nil {
		return
	}
	switch f.section {
	case secTweets:
		d := dashboard.TweetDraft{
			Text:     f.value(0),
			Date:     f.value(1),
			Likes:    f.intValue(2),
			Retweets: f.intValue(3),
			Replies:  f.intValue(4),
		}
		if f.editIndex == dashboard.NoEdit {
			m.st.AddTweet(d)
		} else {
			m.st.CommitEditTweet(f.editIndex, d)
		}
	case secQuests:
		d := dashboard.QuestDraft{
			Name:    f.value(0),
			Date:    f.value(1),
			Percent: f.intValue(2),
		}
		if f.editIndex == dashboard.NoEdit {
			m.st.AddQuest(d)
		} else {
			m.st.CommitEditQuest(f.editIndex, d)
		}
		m.questCursor = clampCursor(m.questCursor, len(m.st.Quests))
	case secCommunity:
		d := dashboard.CommunityDraft{
			Text:           f.value(0),
			RoleBadge:      f.value(1),
			TopContributor: strings.EqualFold(f.value(2), "y"),
		}
		if f.editIndex == dashboard.NoEdit {
			m.st.AddCommunity(d)
		} else {
			m.st.CommitEditCommunity(f.editIndex, d)
		}
	}
	m.closeModal()
}

func (m *appModel) cancelForm() {
	if m.form != nil && m.form.editIndex != dashboard.NoEdit {
		switch m.form.section {
		case secTweets:
			m.st.CancelEditTweet()
		case secQuests:
			m.st.CancelEditQuest()
		case secCommunity:
			m.st.CancelEditCommunity()
		}
	}
	m.closeModal()
}

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.form = nil
	m.confirmFocus = confirmFocusConfirm
}

func (m *appModel) deleteSelected() {
	i := m.selected()
	switch m.focus {
	case secTweets:
		m.st.RemoveTweet(i)
	case secQuests:
		if m.st.RemoveQuest(i) {
			m.questCursor = clampCursor(m.questCursor, len(m.st.Quests))
		}
	case secCommunity:
		m.st.RemoveCommunity(i)
	}
}
