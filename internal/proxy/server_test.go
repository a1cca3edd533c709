package proxy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"promodash/internal/twitter"
)

type fakeUpstream struct {
	id        string
	idErr     error
	tweets    []twitter.Tweet
	tweetsErr error
	gotUser   string
	gotMax    int
}

func (f *fakeUpstream) UserIDByUsername(ctx context.Context, username string) (string, error) {
	f.gotUser = username
	return f.id, f.idErr
}

func (f *fakeUpstream) RecentTweets(ctx context.Context, userID string, max int) ([]twitter.Tweet, error) {
	f.gotMax = max
	return f.tweets, f.tweetsErr
}

func newTestServer(t *testing.T, token string, up Upstream) *Server {
	t.Helper()
	s, err := NewServer(ServerConfig{
		Addr:         ":0",
		ClientOrigin: "http://localhost:5173",
		BearerToken:  token,
	}, up)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func doGet(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, "tok", &fakeUpstream{})
	rec := doGet(t, s, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["ok"] != true {
		t.Errorf("body = %v", body)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("allow-origin = %q", got)
	}
}

func TestMissingToken(t *testing.T) {
	s := newTestServer(t, "", nil)
	rec := doGet(t, s, "/api/twitter?username=someone")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Missing TWITTER_BEARER_TOKEN" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestMissingUsername(t *testing.T) {
	s := newTestServer(t, "tok", &fakeUpstream{})
	for _, target := range []string{"/api/twitter", "/api/twitter?username=%20%20"} {
		rec := doGet(t, s, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, rec.Code)
		}
		if body := decodeBody(t, rec); body["error"] != "username is required" {
			t.Errorf("%s: error = %v", target, body["error"])
		}
	}
}

func TestUserNotFound(t *testing.T) {
	s := newTestServer(t, "tok", &fakeUpstream{idErr: twitter.ErrUserNotFound})
	rec := doGet(t, s, "/api/twitter?username=nobody")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "User not found" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestCountClamped(t *testing.T) {
	cases := []struct {
		query string
		want  int
	}{
		{"count=20", 10},
		{"count=0", 1},
		{"count=abc", 5},
		{"", 5},
		{"count=7", 7},
	}
	for _, tc := range cases {
		up := &fakeUpstream{id: "42"}
		s := newTestServer(t, "tok", up)
		target := "/api/twitter?username=someone"
		if tc.query != "" {
			target += "&" + tc.query
		}
		if rec := doGet(t, s, target); rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", tc.query, rec.Code)
		}
		if up.gotMax != tc.want {
			t.Errorf("%s: max = %d, want %d", tc.query, up.gotMax, tc.want)
		}
	}
}

func TestEmptyTweetListIsOK(t *testing.T) {
	s := newTestServer(t, "tok", &fakeUpstream{id: "42"})
	rec := doGet(t, s, "/api/twitter?username=quiet")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"tweets":[]`) {
		t.Errorf("body = %q, want empty tweets array", rec.Body.String())
	}
}

func TestSuccess(t *testing.T) {
	up := &fakeUpstream{
		id: "42",
		tweets: []twitter.Tweet{
			{ID: "1", Text: "hello", CreatedAt: "2024-03-01T10:00:00.000Z",
				PublicMetrics: &twitter.Metrics{LikeCount: 3}},
		},
	}
	s := newTestServer(t, "tok", up)
	rec := doGet(t, s, "/api/twitter?username=%20someone%20")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if up.gotUser != "someone" {
		t.Errorf("username = %q, want trimmed", up.gotUser)
	}
	body := decodeBody(t, rec)
	tweets, ok := body["tweets"].([]any)
	if !ok || len(tweets) != 1 {
		t.Fatalf("tweets = %v", body["tweets"])
	}
}

func TestUpstreamErrorPassthrough(t *testing.T) {
	s := newTestServer(t, "tok", &fakeUpstream{
		idErr: &twitter.APIError{StatusCode: 429, Body: json.RawMessage(`{"title":"Too Many Requests"}`)},
	})
	rec := doGet(t, s, "/api/twitter?username=busy")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "Twitter API request failed" {
		t.Errorf("error = %v", body["error"])
	}
	details, ok := body["details"].(map[string]any)
	if !ok || details["title"] != "Too Many Requests" {
		t.Errorf("details = %v", body["details"])
	}
}

func TestUpstreamErrorWithoutStatus(t *testing.T) {
	s := newTestServer(t, "tok", &fakeUpstream{
		id:        "42",
		tweetsErr: context.DeadlineExceeded,
	})
	rec := doGet(t, s, "/api/twitter?username=slow")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Twitter API request failed" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestPreflight(t *testing.T) {
	s := newTestServer(t, "tok", &fakeUpstream{})
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/twitter", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "GET") {
		t.Errorf("allow-methods = %q", got)
	}
}
