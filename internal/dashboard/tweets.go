package dashboard

import (
	"strings"

	"promodash/internal/model"
)

// TweetDraft carries the editable fields of a manual tweet between a form
// and the collection. An empty ImageData on commit keeps the previous image
// (field-level merge).
type TweetDraft struct {
	Text      string
	Date      string
	Likes     int
	Retweets  int
	Replies   int
	ImageData string
}

// AddTweet inserts a manual record at the front of the collection (tweets
// display newest-first), clears the edit cursor and persists.
func (st *State) AddTweet(d TweetDraft) {
	t := model.Tweet{
		Source:    model.SourceManual,
		Text:      strings.TrimSpace(d.Text),
		Date:      d.Date,
		Likes:     d.Likes,
		Retweets:  d.Retweets,
		Replies:   d.Replies,
		ImageData: d.ImageData,
	}
	st.Tweets = append([]model.Tweet{t}, st.Tweets...)
	st.EditTweet = NoEdit
	st.TweetCarousel.Clamp(len(st.Tweets))
	st.persistTweets()
}

// BeginEditTweet sets the edit cursor and returns a draft pre-populated
// from the record. Out-of-range indexes and API-sourced records are a
// silent no-op.
func (st *State) BeginEditTweet(i int) (TweetDraft, bool) {
	if i < 0 || i >= len(st.Tweets) || !st.Tweets[i].Editable() {
		return TweetDraft{}, false
	}
	t := st.Tweets[i]
	st.EditTweet = i
	return TweetDraft{
		Text:     t.Text,
		Date:     t.Date,
		Likes:    t.Likes,
		Retweets: t.Retweets,
		Replies:  t.Replies,
	}, true
}

// CommitEditTweet replaces the record at i with the draft, keeping the
// previous image when the draft has none. No-op on invalid targets.
func (st *State) CommitEditTweet(i int, d TweetDraft) {
	if i < 0 || i >= len(st.Tweets) || !st.Tweets[i].Editable() {
		return
	}
	prev := st.Tweets[i]
	img := d.ImageData
	if img == "" {
		img = prev.ImageData
	}
	st.Tweets[i] = model.Tweet{
		Source:    model.SourceManual,
		Text:      strings.TrimSpace(d.Text),
		Date:      d.Date,
		Likes:     d.Likes,
		Retweets:  d.Retweets,
		Replies:   d.Replies,
		ImageData: img,
	}
	st.EditTweet = NoEdit
	st.persistTweets()
}

func (st *State) CancelEditTweet() {
	st.EditTweet = NoEdit
}

// RemoveTweet splices out the record at i. Confirmation happens in the UI
// before calling this. API-sourced records and bad indexes are a no-op.
func (st *State) RemoveTweet(i int) bool {
	if i < 0 || i >= len(st.Tweets) || !st.Tweets[i].Editable() {
		return false
	}
	st.Tweets = append(st.Tweets[:i], st.Tweets[i+1:]...)
	st.EditTweet = NoEdit
	st.TweetCarousel.Clamp(len(st.Tweets))
	st.persistTweets()
	return true
}

// ReplaceTweets swaps in a freshly fetched API collection. This discards
// any manual records — the documented, destructive side effect of an API
// mode fetch.
func (st *State) ReplaceTweets(tweets []model.Tweet) {
	if tweets == nil {
		tweets = []model.Tweet{}
	}
	st.Tweets = tweets
	st.EditTweet = NoEdit
	st.TweetCarousel.Clamp(len(st.Tweets))
	st.persistTweets()
}

func (st *State) persistTweets() {
	_ = st.store.SaveTweets(st.Tweets)
}
