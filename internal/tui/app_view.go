package tui

import (
	"fmt"
	"strings"

	"promodash/internal/chart"
	"promodash/internal/dashboard"
	"promodash/internal/model"

	"github.com/charmbracelet/lipgloss"
)

const fallbackWidth = 80

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.width
	if width <= 0 {
		width = fallbackWidth
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(width))
	b.WriteString("\n\n")
	b.WriteString(m.renderTweets(width))
	b.WriteString("\n\n")
	b.WriteString(m.renderQuests(width))
	b.WriteString("\n\n")
	b.WriteString(m.renderCommunity(width))
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter(width))

	switch m.modal {
	case modalForm, modalFetch:
		return m.renderFormModal(width)
	case modalConfirmDelete:
		return m.renderConfirm(width)
	}
	return b.String()
}

func (m appModel) renderHeader(width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("Promodash")
	meta := styleMuted().Render(fmt.Sprintf("mode: %s   theme: %s", m.settings.Mode, m.settings.Theme))
	return fitLine(title+"  "+meta, width)
}

func (m appModel) renderFooter(width int) string {
	help := "tab: section   ←/→: move   v: view   a: add   e: edit   d: delete   m: mode   t: theme   f: fetch   q: quit"
	lines := []string{styleMuted().Render(fitLine(help, width))}
	if m.status != "" {
		st := lipgloss.NewStyle().Foreground(colorDanger)
		if m.fetchBusy || strings.HasPrefix(m.status, "Fetched ") {
			st = lipgloss.NewStyle().Foreground(colorSuccess)
		}
		lines = append([]string{st.Render(fitLine(m.status, width))}, lines...)
	}
	return strings.Join(lines, "\n")
}

func (m appModel) renderTweets(width int) string {
	focused := m.focus == secTweets
	head := styleSectionTitle(focused).Render("Tweets") + viewTag(string(m.st.TweetView))
	body := ""
	switch {
	case len(m.st.Tweets) == 0:
		body = styleMuted().Render("No tweets yet.")
	case m.st.TweetView == dashboard.ViewCarousel:
		i := m.st.TweetCarousel.Index
		body = m.renderTweetCard(m.st.Tweets[i], width, focused) + "\n" +
			styleMuted().Render(fmt.Sprintf("%d / %d", i+1, len(m.st.Tweets)))
	default:
		rows := make([]string, 0, len(m.st.Tweets))
		for i, t := range m.st.Tweets {
			rows = append(rows, m.renderTweetRow(t, i, width, focused))
		}
		body = strings.Join(rows, "\n")
	}
	return head + "\n" + body + m.renderChart(width)
}

func (m appModel) renderTweetCard(t model.Tweet, width int, focused bool) string {
	cardW := min(width-4, 72)
	text := renderMarkdown(t.Text, cardW-4)
	stats := fmt.Sprintf("♥ %d  ↻ %d  💬 %d", t.Likes, t.Retweets, t.Replies)
	if t.Date != "" {
		stats += "  • " + t.Date
	}
	if !t.Editable() {
		stats += "  " + styleMuted().Render("[fetched]")
	}
	if t.ImageData != "" {
		stats += "  " + styleMuted().Render("[image]")
	}
	return styleCard(focused).Width(cardW).Render(text + "\n" + styleMuted().Render(stats))
}

func (m appModel) renderTweetRow(t model.Tweet, i, width int, focused bool) string {
	marker := "  "
	if focused && i == m.st.TweetCarousel.Index {
		marker = "> "
	}
	line := fmt.Sprintf("%s%s  ♥ %d ↻ %d", marker, firstLine(t.Text), t.Likes, t.Retweets)
	if !t.Editable() {
		line += " [fetched]"
	}
	if focused && i == m.st.TweetCarousel.Index {
		return lipgloss.NewStyle().Background(colorSelectedBg).Render(fitLine(line, width))
	}
	return fitLine(line, width)
}

func (m appModel) renderChart(width int) string {
	series := chart.FromTweets(m.st.Tweets)
	if series.Empty() {
		return ""
	}
	sparkW := min(width-12, len(series.Labels)*2)
	likes := chart.Sparkline(series.Likes, sparkW)
	rts := chart.Sparkline(series.Retweets, sparkW)
	if likes == "" && rts == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	if likes != "" {
		b.WriteString("\n" + styleMuted().Render("likes    ") + lipgloss.NewStyle().Foreground(colorAccent).Render(likes))
	}
	if rts != "" {
		b.WriteString("\n" + styleMuted().Render("retweets ") + lipgloss.NewStyle().Foreground(colorSuccess).Render(rts))
	}
	return b.String()
}

func (m appModel) renderQuests(width int) string {
	focused := m.focus == secQuests
	head := styleSectionTitle(focused).Render("Quests")
	if len(m.st.Quests) == 0 {
		return head + "\n" + styleMuted().Render("No quests yet.")
	}
	rows := make([]string, 0, len(m.st.Quests))
	for i, q := range m.st.Quests {
		rows = append(rows, m.renderQuestRow(q, i, width, focused))
	}
	return head + "\n" + strings.Join(rows, "\n")
}

func (m appModel) renderQuestRow(q model.Quest, i, width int, focused bool) string {
	marker := "  "
	if focused && i == m.questCursor {
		marker = "> "
	}
	p := model.ClampPercent(q.Percent)
	filled := p / 5
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	barStyle := lipgloss.NewStyle().Foreground(colorAccent)
	suffix := fmt.Sprintf(" %3d%%", p)
	if q.Complete() {
		barStyle = lipgloss.NewStyle().Foreground(colorSuccess)
		suffix += " ✨ Completed"
	}
	line := marker + firstLine(q.Name) + "  " + barStyle.Render(bar) + suffix
	if q.Date != "" {
		line += styleMuted().Render("  • " + q.Date)
	}
	return fitLine(line, width)
}

func (m appModel) renderCommunity(width int) string {
	focused := m.focus == secCommunity
	head := styleSectionTitle(focused).Render("Community") + viewTag(string(m.st.CommunityView))
	body := ""
	switch {
	case len(m.st.Community) == 0:
		body = styleMuted().Render("No highlights yet.")
	case m.st.CommunityView == dashboard.ViewCarousel:
		i := m.st.CommunityCarousel.Index
		body = m.renderCommunityCard(m.st.Community[i], width, focused) + "\n" +
			styleMuted().Render(fmt.Sprintf("%d / %d", i+1, len(m.st.Community)))
	default:
		rows := make([]string, 0, len(m.st.Community))
		for i, c := range m.st.Community {
			rows = append(rows, m.renderCommunityRow(c, i, width, focused))
		}
		body = strings.Join(rows, "\n")
	}
	return head + "\n" + body
}

func (m appModel) renderCommunityCard(c model.Community, width int, focused bool) string {
	cardW := min(width-4, 72)
	text := renderMarkdown(c.Text, cardW-4)
	badges := communityBadges(c)
	content := text
	if badges != "" {
		content += "\n" + styleMuted().Render(badges)
	}
	return styleCard(focused).Width(cardW).Render(content)
}

func (m appModel) renderCommunityRow(c model.Community, i, width int, focused bool) string {
	marker := "  "
	if focused && i == m.st.CommunityCarousel.Index {
		marker = "> "
	}
	line := marker + firstLine(c.Text)
	if badges := communityBadges(c); badges != "" {
		line += "  " + badges
	}
	if focused && i == m.st.CommunityCarousel.Index {
		return lipgloss.NewStyle().Background(colorSelectedBg).Render(fitLine(line, width))
	}
	return fitLine(line, width)
}

func communityBadges(c model.Community) string {
	badges := make([]string, 0, 2)
	if c.TopContributor {
		badges = append(badges, "🏆 Top Contributor")
	}
	if c.RoleBadge != "" {
		badges = append(badges, c.RoleBadge)
	}
	return strings.Join(badges, "  ")
}

func viewTag(v string) string {
	return styleMuted().Render("  [" + v + "]")
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
