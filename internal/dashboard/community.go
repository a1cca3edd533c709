package dashboard

import (
	"strings"

	"promodash/internal/model"
)

type CommunityDraft struct {
	Text           string
	TopContributor bool
	RoleBadge      string
	ImageData      string
}

// AddCommunity appends to the back of the collection.
func (st *State) AddCommunity(d CommunityDraft) {
	c := model.Community{
		Text:           strings.TrimSpace(d.Text),
		TopContributor: d.TopContributor,
		RoleBadge:      strings.TrimSpace(d.RoleBadge),
		ImageData:      d.ImageData,
	}
	st.Community = append(st.Community, c)
	st.EditCommunity = NoEdit
	st.CommunityCarousel.Clamp(len(st.Community))
	st.persistCommunity()
}

func (st *State) BeginEditCommunity(i int) (CommunityDraft, bool) {
	if i < 0 || i >= len(st.Community) {
		return CommunityDraft{}, false
	}
	c := st.Community[i]
	st.EditCommunity = i
	return CommunityDraft{
		Text:           c.Text,
		TopContributor: c.TopContributor,
		RoleBadge:      c.RoleBadge,
	}, true
}

func (st *State) CommitEditCommunity(i int, d CommunityDraft) {
	if i < 0 || i >= len(st.Community) {
		return
	}
	prev := st.Community[i]
	img := d.ImageData
	if img == "" {
		img = prev.ImageData
	}
	st.Community[i] = model.Community{
		Text:           strings.TrimSpace(d.Text),
		TopContributor: d.TopContributor,
		RoleBadge:      strings.TrimSpace(d.RoleBadge),
		ImageData:      img,
	}
	st.EditCommunity = NoEdit
	st.persistCommunity()
}

func (st *State) CancelEditCommunity() {
	st.EditCommunity = NoEdit
}

func (st *State) RemoveCommunity(i int) bool {
	if i < 0 || i >= len(st.Community) {
		return false
	}
	st.Community = append(st.Community[:i], st.Community[i+1:]...)
	st.EditCommunity = NoEdit
	st.CommunityCarousel.Clamp(len(st.Community))
	st.persistCommunity()
	return true
}

func (st *State) persistCommunity() {
	_ = st.store.SaveCommunity(st.Community)
}
