// Package chart derives engagement time series from the tweets collection.
// Rendering is optional everywhere: a surface without chart capability
// (narrow terminal, missing chart script) simply skips it.
package chart

import (
	"encoding/json"
	"fmt"

	"promodash/internal/model"
)

// Series is one label per tweet record with the aligned likes/retweets
// values. Order matches the collection (newest first).
type Series struct {
	Labels   []string `json:"labels"`
	Likes    []int    `json:"likes"`
	Retweets []int    `json:"retweets"`
}

// FromTweets builds the series. Records without a date get a positional
// label, numbered most-recent-first ("#5" for the front of a 5-record
// collection).
func FromTweets(tweets []model.Tweet) Series {
	n := len(tweets)
	s := Series{
		Labels:   make([]string, 0, n),
		Likes:    make([]int, 0, n),
		Retweets: make([]int, 0, n),
	}
	for i, t := range tweets {
		label := t.Date
		if label == "" {
			label = fmt.Sprintf("#%d", n-i)
		}
		s.Labels = append(s.Labels, label)
		s.Likes = append(s.Likes, t.Likes)
		s.Retweets = append(s.Retweets, t.Retweets)
	}
	return s
}

func (s Series) Empty() bool {
	return len(s.Labels) == 0
}

// JSON serializes the series for the web chart script. Errors cannot occur
// for this shape; the fallback keeps callers no-op safe anyway.
func (s Series) JSON() string {
	b, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(b)
}
