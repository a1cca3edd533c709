package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"promodash/internal/model"
)

// One JSON file per persisted key. The store is a best-effort local cache,
// not a source of truth: a missing or corrupt file degrades to that key's
// default, and callers are expected to ignore write failures.
const (
	tweetsFileName    = "tweets.json"
	questsFileName    = "quests.json"
	communityFileName = "community.json"
	settingsFileName  = "settings.json"
)

type Store struct {
	Dir string
}

// DefaultDir resolves the store directory: PROMODASH_DIR when set, else
// ~/.promodash.
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("PROMODASH_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".promodash"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) path(name string) string {
	return filepath.Join(s.Dir, name)
}

// loadSlice reads a JSON array into out. Missing and corrupt files both
// leave out untouched so the caller's default (empty slice) stands.
func (s Store) loadSlice(name string, out any) {
	b, err := os.ReadFile(s.path(name))
	if err != nil {
		return
	}
	_ = json.Unmarshal(b, out)
}

func (s Store) saveJSON(name string, v any) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	path := s.path(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s Store) LoadTweets() []model.Tweet {
	out := []model.Tweet{}
	s.loadSlice(tweetsFileName, &out)
	if out == nil {
		out = []model.Tweet{}
	}
	return out
}

func (s Store) SaveTweets(tweets []model.Tweet) error {
	if tweets == nil {
		tweets = []model.Tweet{}
	}
	return s.saveJSON(tweetsFileName, tweets)
}

func (s Store) LoadQuests() []model.Quest {
	out := []model.Quest{}
	s.loadSlice(questsFileName, &out)
	if out == nil {
		out = []model.Quest{}
	}
	return out
}

func (s Store) SaveQuests(quests []model.Quest) error {
	if quests == nil {
		quests = []model.Quest{}
	}
	return s.saveJSON(questsFileName, quests)
}

func (s Store) LoadCommunity() []model.Community {
	out := []model.Community{}
	s.loadSlice(communityFileName, &out)
	if out == nil {
		out = []model.Community{}
	}
	return out
}

func (s Store) SaveCommunity(entries []model.Community) error {
	if entries == nil {
		entries = []model.Community{}
	}
	return s.saveJSON(communityFileName, entries)
}
