package chart

import (
	"strings"
	"testing"

	"promodash/internal/model"
)

func TestFromTweets_LabelsDateOrPositional(t *testing.T) {
	tweets := []model.Tweet{
		{Source: model.SourceManual, Text: "a", Date: "2024-03-01", Likes: 5, Retweets: 2},
		{Source: model.SourceManual, Text: "b", Likes: 1},
		{Source: model.SourceManual, Text: "c", Date: "2024-02-01", Retweets: 9},
	}
	s := FromTweets(tweets)
	wantLabels := []string{"2024-03-01", "#2", "2024-02-01"}
	if len(s.Labels) != 3 {
		t.Fatalf("expected 3 labels, got %v", s.Labels)
	}
	for i, w := range wantLabels {
		if s.Labels[i] != w {
			t.Fatalf("label[%d]: got %q want %q", i, s.Labels[i], w)
		}
	}
	if s.Likes[0] != 5 || s.Retweets[2] != 9 {
		t.Fatalf("series misaligned: %+v", s)
	}
}

func TestFromTweets_Empty(t *testing.T) {
	s := FromTweets(nil)
	if !s.Empty() {
		t.Fatalf("expected empty series")
	}
	if s.JSON() == "" {
		t.Fatalf("JSON must still serialize an empty series")
	}
}

func TestSeriesJSON_Shape(t *testing.T) {
	s := FromTweets([]model.Tweet{{Source: model.SourceAPI, Text: "x", Likes: 3}})
	j := s.JSON()
	for _, key := range []string{`"labels"`, `"likes"`, `"retweets"`} {
		if !strings.Contains(j, key) {
			t.Fatalf("JSON missing %s: %s", key, j)
		}
	}
}

func TestSparkline_Degrades(t *testing.T) {
	if Sparkline(nil, 20) != "" {
		t.Fatalf("no values must render nothing")
	}
	if Sparkline([]int{1, 2, 3}, 0) != "" {
		t.Fatalf("zero width must render nothing")
	}
	if Sparkline([]int{0, 0}, 10) != "" {
		t.Fatalf("all-zero series must render nothing")
	}
}

func TestSparkline_WidthAndScale(t *testing.T) {
	got := Sparkline([]int{10, 5, 0, 1}, 10)
	runes := []rune(got)
	if len(runes) != 4 {
		t.Fatalf("expected 4 glyphs, got %d (%q)", len(runes), got)
	}
	if runes[0] != '█' {
		t.Fatalf("max value should render the full glyph, got %q", runes[0])
	}
	if runes[2] != '▁' {
		t.Fatalf("zero should render the empty glyph, got %q", runes[2])
	}
	if runes[3] == '▁' {
		t.Fatalf("non-zero value must be visible, got %q", got)
	}

	truncated := Sparkline([]int{1, 2, 3, 4, 5}, 3)
	if len([]rune(truncated)) != 3 {
		t.Fatalf("series wider than the area must truncate, got %q", truncated)
	}
}
