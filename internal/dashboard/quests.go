package dashboard

import (
	"strings"

	"promodash/internal/model"
)

type QuestDraft struct {
	Name           string
	Date           string
	Percent        int
	BadgeImageData string
}

// AddQuest appends to the collection (quests display in insertion order),
// clamping percent to [0,100].
func (st *State) AddQuest(d QuestDraft) {
	q := model.Quest{
		Name:           strings.TrimSpace(d.Name),
		Date:           d.Date,
		Percent:        model.ClampPercent(d.Percent),
		BadgeImageData: d.BadgeImageData,
	}
	st.Quests = append(st.Quests, q)
	st.EditQuest = NoEdit
	st.persistQuests()
}

func (st *State) BeginEditQuest(i int) (QuestDraft, bool) {
	if i < 0 || i >= len(st.Quests) {
		return QuestDraft{}, false
	}
	q := st.Quests[i]
	st.EditQuest = i
	return QuestDraft{Name: q.Name, Date: q.Date, Percent: q.Percent}, true
}

func (st *State) CommitEditQuest(i int, d QuestDraft) {
	if i < 0 || i >= len(st.Quests) {
		return
	}
	prev := st.Quests[i]
	badge := d.BadgeImageData
	if badge == "" {
		badge = prev.BadgeImageData
	}
	st.Quests[i] = model.Quest{
		Name:           strings.TrimSpace(d.Name),
		Date:           d.Date,
		Percent:        model.ClampPercent(d.Percent),
		BadgeImageData: badge,
	}
	st.EditQuest = NoEdit
	st.persistQuests()
}

func (st *State) CancelEditQuest() {
	st.EditQuest = NoEdit
}

func (st *State) RemoveQuest(i int) bool {
	if i < 0 || i >= len(st.Quests) {
		return false
	}
	st.Quests = append(st.Quests[:i], st.Quests[i+1:]...)
	st.EditQuest = NoEdit
	st.persistQuests()
	return true
}

func (st *State) persistQuests() {
	_ = st.store.SaveQuests(st.Quests)
}
