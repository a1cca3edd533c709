package dashboard

import (
	"testing"

	"promodash/internal/model"
	"promodash/internal/store"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	return Load(store.Store{Dir: t.TempDir()})
}

func TestAddTweet_InsertsAtFrontAndPersists(t *testing.T) {
	s := store.Store{Dir: t.TempDir()}
	st := Load(s)

	st.AddTweet(TweetDraft{Text: "first"})
	st.AddTweet(TweetDraft{Text: "hello", Date: "2024-01-01", Likes: 3, Retweets: 1, Replies: 0})

	if len(st.Tweets) != 2 {
		t.Fatalf("expected 2 tweets, got %d", len(st.Tweets))
	}
	got := st.Tweets[0]
	want := model.Tweet{Source: model.SourceManual, Text: "hello", Date: "2024-01-01", Likes: 3, Retweets: 1}
	if got != want {
		t.Fatalf("front tweet mismatch: got %+v want %+v", got, want)
	}

	// Round trip through the store (reload as a fresh state).
	st2 := Load(s)
	if len(st2.Tweets) != 2 || st2.Tweets[0] != want {
		t.Fatalf("reload mismatch: %+v", st2.Tweets)
	}
}

func TestAddCommunity_AppendsAtBack(t *testing.T) {
	st := newTestState(t)
	st.AddCommunity(CommunityDraft{Text: "a"})
	st.AddCommunity(CommunityDraft{Text: "b"})
	if st.Community[len(st.Community)-1].Text != "b" {
		t.Fatalf("expected b at back, got %+v", st.Community)
	}
}

func TestCommitEditTweet_MergeKeepsPreviousImage(t *testing.T) {
	st := newTestState(t)
	st.AddTweet(TweetDraft{Text: "original", Date: "2024-02-02", Likes: 7, Retweets: 2, Replies: 1, ImageData: "data:image/png;base64,AAA"})

	d, ok := st.BeginEditTweet(0)
	if !ok {
		t.Fatalf("begin edit failed")
	}
	d.Text = "edited"
	// No new image selected.
	d.ImageData = ""
	st.CommitEditTweet(0, d)

	got := st.Tweets[0]
	if got.Text != "edited" {
		t.Fatalf("text not updated: %+v", got)
	}
	if got.Date != "2024-02-02" || got.Likes != 7 || got.Retweets != 2 || got.Replies != 1 {
		t.Fatalf("edit dropped pre-populated fields: %+v", got)
	}
	if got.ImageData != "data:image/png;base64,AAA" {
		t.Fatalf("expected previous image kept, got %q", got.ImageData)
	}
	if st.EditTweet != NoEdit {
		t.Fatalf("edit cursor not cleared: %d", st.EditTweet)
	}
}

func TestBeginEditTweet_APIRecordIsNoOp(t *testing.T) {
	st := newTestState(t)
	st.ReplaceTweets([]model.Tweet{{Source: model.SourceAPI, ExternalID: "1", Text: "api"}})
	if _, ok := st.BeginEditTweet(0); ok {
		t.Fatalf("api record must not be editable")
	}
	if st.EditTweet != NoEdit {
		t.Fatalf("edit cursor set on no-op: %d", st.EditTweet)
	}
}

func TestRemoveTweet_NoOpOnAPIRecordAndBadIndex(t *testing.T) {
	st := newTestState(t)
	st.ReplaceTweets([]model.Tweet{{Source: model.SourceAPI, Text: "api"}})
	if st.RemoveTweet(0) {
		t.Fatalf("api record must not be deletable")
	}
	if st.RemoveTweet(5) || st.RemoveTweet(-1) {
		t.Fatalf("out of range delete must be a no-op")
	}
	if len(st.Tweets) != 1 {
		t.Fatalf("collection length changed: %d", len(st.Tweets))
	}
}

func TestRemoveTweet_ResetsEditCursor(t *testing.T) {
	st := newTestState(t)
	st.AddTweet(TweetDraft{Text: "b"})
	st.AddTweet(TweetDraft{Text: "a"})
	if _, ok := st.BeginEditTweet(1); !ok {
		t.Fatalf("begin edit failed")
	}
	if !st.RemoveTweet(0) {
		t.Fatalf("remove failed")
	}
	if st.EditTweet != NoEdit {
		t.Fatalf("delete must reset the edit cursor, got %d", st.EditTweet)
	}
}

func TestReplaceTweets_ClearsCursorAndClampsCarousel(t *testing.T) {
	st := newTestState(t)
	for i := 0; i < 5; i++ {
		st.AddTweet(TweetDraft{Text: "t"})
	}
	st.TweetCarousel.Index = 4
	if _, ok := st.BeginEditTweet(2); !ok {
		t.Fatalf("begin edit failed")
	}

	st.ReplaceTweets([]model.Tweet{{Source: model.SourceAPI, Text: "only"}})
	if st.EditTweet != NoEdit {
		t.Fatalf("replace must reset the edit cursor")
	}
	if st.TweetCarousel.Index != 0 {
		t.Fatalf("carousel not re-clamped: %d", st.TweetCarousel.Index)
	}
}

func TestQuestPercentClamped(t *testing.T) {
	st := newTestState(t)
	st.AddQuest(QuestDraft{Name: "q", Percent: 250})
	if st.Quests[0].Percent != 100 {
		t.Fatalf("percent not clamped: %d", st.Quests[0].Percent)
	}
	st.AddQuest(QuestDraft{Name: "r", Percent: -3})
	if st.Quests[1].Percent != 0 {
		t.Fatalf("percent not clamped low: %d", st.Quests[1].Percent)
	}
}

func TestCommitEditQuest_KeepsBadgeWhenDraftHasNone(t *testing.T) {
	st := newTestState(t)
	st.AddQuest(QuestDraft{Name: "q", Percent: 40, BadgeImageData: "data:image/png;base64,BBB"})
	d, ok := st.BeginEditQuest(0)
	if !ok {
		t.Fatalf("begin edit failed")
	}
	d.Percent = 100
	st.CommitEditQuest(0, d)
	q := st.Quests[0]
	if q.Percent != 100 || !q.Complete() {
		t.Fatalf("quest not completed: %+v", q)
	}
	if q.BadgeImageData != "data:image/png;base64,BBB" {
		t.Fatalf("badge image dropped on edit: %q", q.BadgeImageData)
	}
}

func TestCancelEdit_LeavesCollectionUntouched(t *testing.T) {
	st := newTestState(t)
	st.AddCommunity(CommunityDraft{Text: "keep me", RoleBadge: "mod"})
	if _, ok := st.BeginEditCommunity(0); !ok {
		t.Fatalf("begin edit failed")
	}
	st.CancelEditCommunity()
	if st.EditCommunity != NoEdit {
		t.Fatalf("cursor not cleared")
	}
	if st.Community[0].Text != "keep me" || st.Community[0].RoleBadge != "mod" {
		t.Fatalf("cancel mutated the record: %+v", st.Community[0])
	}
}
