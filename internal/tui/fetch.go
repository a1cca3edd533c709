package tui

import (
	"context"
	"time"

	"promodash/internal/apiclient"
	"promodash/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

type fetchResultMsg struct {
	tweets []model.Tweet
	err    error
}

func fetchRecentCmd(backendURL, username string, count int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		tweets, err := apiclient.New(backendURL).FetchRecent(ctx, username, count)
		return fetchResultMsg{tweets: tweets, err: err}
	}
}
