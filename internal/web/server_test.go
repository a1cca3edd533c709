package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"promodash/internal/store"
)

func newTestWeb(t *testing.T) (*Server, store.Store) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewServer(ServerConfig{Addr: ":0", Dir: dir})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s, store.Store{Dir: dir}
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func postForm(t *testing.T, s *Server, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHomeRenders(t *testing.T) {
	s, _ := newTestWeb(t)
	rec := get(t, s, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Tweets", "Quests", "Community", "No tweets yet."} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestTweetAddInsertsAtFront(t *testing.T) {
	s, st := newTestWeb(t)
	for _, text := range []string{"first", "second"} {
		rec := postForm(t, s, "/tweets", url.Values{"text": {text}, "likes": {"3"}})
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("status = %d", rec.Code)
		}
	}
	tweets := st.LoadTweets()
	if len(tweets) != 2 {
		t.Fatalf("len = %d", len(tweets))
	}
	if tweets[0].Text != "second" {
		t.Errorf("newest should be first, got %q", tweets[0].Text)
	}
}

func TestTweetEscapedInPage(t *testing.T) {
	s, _ := newTestWeb(t)
	postForm(t, s, "/tweets", url.Values{"text": {`<script>alert("x")</script>`}})
	body := get(t, s, "/").Body.String()
	if strings.Contains(body, "<script>alert") {
		t.Fatal("unescaped record text in page")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("escaped text missing from page")
	}
}

func TestTweetEditInPlace(t *testing.T) {
	s, st := newTestWeb(t)
	postForm(t, s, "/tweets", url.Values{"text": {"before"}, "likes": {"1"}})

	body := get(t, s, "/?edit=tweet-0").Body.String()
	if !strings.Contains(body, "/tweets/0/edit") || !strings.Contains(body, "before") {
		t.Fatal("edit form not rendered in place")
	}

	postForm(t, s, "/tweets/0/edit", url.Values{"text": {"after"}, "likes": {"9"}})
	tweets := st.LoadTweets()
	if tweets[0].Text != "after" || tweets[0].Likes != 9 {
		t.Errorf("edit not applied: %+v", tweets[0])
	}
}

func TestDeleteIsTwoStep(t *testing.T) {
	s, st := newTestWeb(t)
	postForm(t, s, "/tweets", url.Values{"text": {"keep me"}})

	body := get(t, s, "/?confirm=tweet-0").Body.String()
	if !strings.Contains(body, "Delete this tweet?") {
		t.Fatal("confirmation not rendered")
	}
	if len(st.LoadTweets()) != 1 {
		t.Fatal("record deleted before confirmation")
	}

	postForm(t, s, "/tweets/0/delete", nil)
	if len(st.LoadTweets()) != 0 {
		t.Error("record not deleted after confirmation")
	}
}

func TestQuestRoundTrip(t *testing.T) {
	s, st := newTestWeb(t)
	postForm(t, s, "/quests", url.Values{"name": {"ship it"}, "percent": {"250"}})
	quests := st.LoadQuests()
	if len(quests) != 1 {
		t.Fatalf("len = %d", len(quests))
	}
	if quests[0].Percent != 100 {
		t.Errorf("percent = %d, want clamped to 100", quests[0].Percent)
	}

	body := get(t, s, "/").Body.String()
	if !strings.Contains(body, "Completed") {
		t.Error("completed badge missing at 100 percent")
	}
}

func TestCommunityAppendsAtBack(t *testing.T) {
	s, st := newTestWeb(t)
	postForm(t, s, "/community", url.Values{"text": {"first"}})
	postForm(t, s, "/community", url.Values{"text": {"second"}, "topContributor": {"1"}})
	entries := st.LoadCommunity()
	if len(entries) != 2 || entries[1].Text != "second" {
		t.Fatalf("entries = %+v", entries)
	}
	if !entries[1].TopContributor {
		t.Error("top contributor flag lost")
	}
}

func TestThemeToggle(t *testing.T) {
	s, st := newTestWeb(t)
	postForm(t, s, "/settings/theme", nil)
	if got := st.LoadSettings().Theme; got != store.ThemeLight {
		t.Fatalf("theme = %q, want light after toggle", got)
	}
	body := get(t, s, "/").Body.String()
	if !strings.Contains(body, "theme-light") {
		t.Error("body class does not follow theme")
	}
}

func TestModeGatesForms(t *testing.T) {
	s, st := newTestWeb(t)
	body := get(t, s, "/").Body.String()
	if !strings.Contains(body, `action="/tweets"`) {
		t.Fatal("manual mode should offer the add form")
	}
	if strings.Contains(body, `action="/fetch"`) {
		t.Fatal("manual mode should not offer the fetch form")
	}

	postForm(t, s, "/settings/mode", nil)
	if got := st.LoadSettings().Mode; got != store.ModeAPI {
		t.Fatalf("mode = %q", got)
	}
	body = get(t, s, "/").Body.String()
	if strings.Contains(body, `action="/tweets"`) && !strings.Contains(body, `action="/fetch"`) {
		t.Fatal("api mode should offer fetch instead of manual add")
	}
}

func TestFetchReplacesTweets(t *testing.T) {
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tweets":[{"id":"9","text":"from api","created_at":"2024-05-01T00:00:00.000Z"}]}`))
	}))
	defer proxy.Close()

	s, st := newTestWeb(t)
	postForm(t, s, "/tweets", url.Values{"text": {"manual"}})
	if err := st.SaveSettings(store.Settings{BackendURL: proxy.URL}); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	rec := postForm(t, s, "/fetch", url.Values{"username": {"someone"}, "count": {"5"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	tweets := st.LoadTweets()
	if len(tweets) != 1 || tweets[0].Text != "from api" {
		t.Fatalf("tweets = %+v, want api records only", tweets)
	}
	if tweets[0].Editable() {
		t.Error("fetched record must not be editable")
	}
}

func TestFetchErrorBanner(t *testing.T) {
	s, _ := newTestWeb(t)
	rec := postForm(t, s, "/fetch", url.Values{"username": {""}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.Contains(loc, "fetchError=") {
		t.Fatalf("location = %q, want fetchError param", loc)
	}
}

func TestChartJSON(t *testing.T) {
	s, _ := newTestWeb(t)
	postForm(t, s, "/tweets", url.Values{"text": {"x"}, "likes": {"4"}, "retweets": {"2"}})
	rec := get(t, s, "/chart.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`"labels"`, `"likes"`, `"retweets"`} {
		if !strings.Contains(body, want) {
			t.Errorf("chart payload missing %s: %s", want, body)
		}
	}
}

func TestCarouselShowsSingleCard(t *testing.T) {
	s, _ := newTestWeb(t)
	for _, text := range []string{"one", "two", "three"} {
		postForm(t, s, "/tweets", url.Values{"text": {text}})
	}

	body := get(t, s, "/?tweetAt=1").Body.String()
	if got := strings.Count(body, `class="proof-card"`); got != 1 {
		t.Errorf("carousel rendered %d tweet cards, want 1", got)
	}
	if !strings.Contains(body, "2 / 3") {
		t.Error("carousel position indicator missing")
	}

	body = get(t, s, "/?tweetView=grid").Body.String()
	if got := strings.Count(body, `class="proof-card"`); got != 3 {
		t.Errorf("grid rendered %d cards, want 3", got)
	}
}

func TestCarouselIndexClamped(t *testing.T) {
	s, _ := newTestWeb(t)
	postForm(t, s, "/tweets", url.Values{"text": {"only"}})
	rec := get(t, s, "/?tweetAt=99")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "1 / 1") {
		t.Error("out-of-range carousel index not clamped")
	}
}
