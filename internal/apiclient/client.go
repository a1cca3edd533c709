// Package apiclient talks to the promodash proxy from the dashboard
// surfaces. It never holds credentials; the proxy injects those.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"promodash/internal/model"
	"promodash/internal/twitter"
)

// ErrUsernameRequired is returned before any request is made.
var ErrUsernameRequired = errors.New("username is required")

// RequestError is a non-2xx answer from the proxy. The proxy's own
// message is kept for display.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("fetch failed with status %d", e.StatusCode)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New builds a client for the given proxy base URL, e.g.
// "http://localhost:5174".
func New(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: http.DefaultClient}
}

type fetchResponse struct {
	Tweets []twitter.Tweet `json:"tweets"`
	Error  string          `json:"error"`
}

// FetchRecent asks the proxy for a user's recent posts and maps them
// into dashboard records. A blank username fails locally; count is
// clamped to the supported window.
func (c *Client) FetchRecent(ctx context.Context, username string, count int) ([]model.Tweet, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	count = twitter.ClampCount(count)

	q := url.Values{}
	q.Set("username", username)
	q.Set("count", strconv.Itoa(count))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/twitter?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out fetchResponse
	if decErr := json.NewDecoder(resp.Body).Decode(&out); decErr != nil && resp.StatusCode < 300 {
		return nil, decErr
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: out.Error}
	}

	tweets := make([]model.Tweet, 0, len(out.Tweets))
	for _, t := range out.Tweets {
		tweets = append(tweets, mapTweet(t))
	}
	return tweets, nil
}

// mapTweet converts an upstream post into a dashboard record. Fetched
// records carry no image and are not editable.
func mapTweet(t twitter.Tweet) model.Tweet {
	m := model.Tweet{
		Source:     model.SourceAPI,
		ExternalID: t.ID,
		Text:       t.Text,
		Date:       dateOnly(t.CreatedAt),
	}
	if t.PublicMetrics != nil {
		m.Likes = t.PublicMetrics.LikeCount
		m.Retweets = t.PublicMetrics.RetweetCount
		m.Replies = t.PublicMetrics.ReplyCount
	}
	return m
}

// dateOnly keeps the calendar-date prefix of an RFC 3339 timestamp.
func dateOnly(createdAt string) string {
	if len(createdAt) >= 10 {
		return createdAt[:10]
	}
	return createdAt
}
