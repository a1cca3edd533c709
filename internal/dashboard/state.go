package dashboard

import (
	"promodash/internal/model"
	"promodash/internal/store"
)

// ViewMode selects how a collection is presented. Quests are grid-only.
type ViewMode string

const (
	ViewCarousel ViewMode = "carousel"
	ViewGrid     ViewMode = "grid"
)

// NoEdit marks a collection as not being edited.
const NoEdit = -1

// State is the whole dashboard: three ordered collections, one edit cursor
// per collection, per-collection view modes and carousel positions. All
// mutation goes through the methods in this package; every mutating
// operation persists the affected collection and re-clamps its carousel.
//
// Persistence is best-effort (the store is a local cache, not a source of
// truth), so save errors are deliberately dropped.
type State struct {
	store store.Store

	Tweets    []model.Tweet
	Quests    []model.Quest
	Community []model.Community

	// Edit cursors: NoEdit or a valid index into the collection.
	EditTweet     int
	EditQuest     int
	EditCommunity int

	TweetView     ViewMode
	CommunityView ViewMode

	TweetCarousel     Carousel
	CommunityCarousel Carousel
}

// Load builds the dashboard state from the persistent store, defaulting
// every collection to empty and both toggle-able views to carousel.
func Load(s store.Store) *State {
	return &State{
		store:         s,
		Tweets:        s.LoadTweets(),
		Quests:        s.LoadQuests(),
		Community:     s.LoadCommunity(),
		EditTweet:     NoEdit,
		EditQuest:     NoEdit,
		EditCommunity: NoEdit,
		TweetView:     ViewCarousel,
		CommunityView: ViewCarousel,
	}
}

// SetTweetView toggles the tweets container. Data and edit cursors are
// untouched; the carousel re-derives its clamp on the next render.
func (st *State) SetTweetView(v ViewMode) {
	if v != ViewCarousel && v != ViewGrid {
		return
	}
	st.TweetView = v
}

func (st *State) SetCommunityView(v ViewMode) {
	if v != ViewCarousel && v != ViewGrid {
		return
	}
	st.CommunityView = v
}
