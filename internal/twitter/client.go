// Package twitter is a minimal X API v2 client for the two calls the proxy
// needs: username lookup and recent-tweet retrieval. Auth is app-only
// (bearer token), injected server-side so it never reaches a browser.
package twitter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/dghubble/sling"
)

const apiBase = "https://api.twitter.com/2/"

// ErrUserNotFound means the lookup succeeded but resolved no user id.
var ErrUserNotFound = errors.New("user not found")

// APIError carries an upstream failure status plus whatever diagnostic
// payload the API returned, so the proxy can propagate both.
type APIError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twitter: upstream status %d", e.StatusCode)
}

type Metrics struct {
	LikeCount    int `json:"like_count"`
	RetweetCount int `json:"retweet_count"`
	ReplyCount   int `json:"reply_count"`
	QuoteCount   int `json:"quote_count"`
}

// Tweet is the raw upstream post shape. The proxy returns it untouched;
// the dashboard client maps it into its own record type.
type Tweet struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	CreatedAt     string   `json:"created_at,omitempty"`
	PublicMetrics *Metrics `json:"public_metrics,omitempty"`
}

type Client struct {
	http *http.Client
	base *sling.Sling
}

// NewClient builds a client with the given bearer token. A nil httpClient
// uses http.DefaultClient.
func NewClient(httpClient *http.Client, bearerToken string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		http: httpClient,
		base: sling.New().
			Client(httpClient).
			Base(apiBase).
			Set("Authorization", "Bearer "+bearerToken),
	}
}

// WithBase rebases the client onto another API root (tests).
func (c *Client) WithBase(base string) *Client {
	c.base = c.base.Base(base)
	return c
}

type userData struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type userLookupResponse struct {
	Data *userData `json:"data"`
}

// UserIDByUsername resolves a handle to a user id.
func (c *Client) UserIDByUsername(ctx context.Context, username string) (string, error) {
	var out userLookupResponse
	path := "users/by/username/" + url.PathEscape(username)
	if err := c.do(ctx, c.base.New().Get(path), &out); err != nil {
		return "", err
	}
	if out.Data == nil || out.Data.ID == "" {
		return "", ErrUserNotFound
	}
	return out.Data.ID, nil
}

type recentTweetsParams struct {
	MaxResults  int    `url:"max_results"`
	TweetFields string `url:"tweet.fields"`
}

type recentTweetsResponse struct {
	Data []Tweet `json:"data"`
}

// RecentTweets fetches up to max recent posts for a user id, requesting
// creation time and engagement metrics. max is clamped to the supported
// window.
func (c *Client) RecentTweets(ctx context.Context, userID string, max int) ([]Tweet, error) {
	params := recentTweetsParams{
		MaxResults:  ClampCount(max),
		TweetFields: "created_at,public_metrics",
	}
	var out recentTweetsResponse
	path := "users/" + url.PathEscape(userID) + "/tweets"
	if err := c.do(ctx, c.base.New().Get(path).QueryStruct(params), &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) do(ctx context.Context, s *sling.Sling, out any) error {
	req, err := s.Request()
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req.WithContext(ctx))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: json.RawMessage(body)}
	}
	return json.Unmarshal(body, out)
}
