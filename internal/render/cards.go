// Package render turns collections into render-ready markup fragments.
// Rendering is pure: collection + view mode in, fragments out. Containers
// (carousel track vs grid) are chosen by the caller; both embed the same
// per-record cards.
package render

import (
	"fmt"
	"strings"

	"promodash/internal/dashboard"
	"promodash/internal/model"
)

// CollectionView is what a surface needs to draw one collection: the active
// container and one fragment per record, in display order.
type CollectionView struct {
	Mode  dashboard.ViewMode
	Cards []string
}

func TweetView(tweets []model.Tweet, mode dashboard.ViewMode) CollectionView {
	cards := make([]string, 0, len(tweets))
	for i, t := range tweets {
		cards = append(cards, TweetCard(t, i))
	}
	return CollectionView{Mode: mode, Cards: cards}
}

func QuestView(quests []model.Quest) CollectionView {
	cards := make([]string, 0, len(quests))
	for i, q := range quests {
		cards = append(cards, QuestCard(q, i))
	}
	// Quests have no carousel.
	return CollectionView{Mode: dashboard.ViewGrid, Cards: cards}
}

func CommunityView(entries []model.Community, mode dashboard.ViewMode) CollectionView {
	cards := make([]string, 0, len(entries))
	for i, c := range entries {
		cards = append(cards, CommunityCard(c, i))
	}
	return CollectionView{Mode: mode, Cards: cards}
}

// TweetCard renders one tweet as a proof card. Edit/delete controls are
// gated on editability: API-sourced records render without actions.
func TweetCard(t model.Tweet, index int) string {
	var b strings.Builder
	b.WriteString(`<div class="proof-card">`)
	fmt.Fprintf(&b, `<div class="description"><p>%s</p></div>`, escapeHTML(t.Text))

	b.WriteString(`<div class="stats">`)
	fmt.Fprintf(&b, `<span>&hearts; %d</span><span>&#8635; %d</span><span>&#128172; %d</span>`, t.Likes, t.Retweets, t.Replies)
	if t.Date != "" {
		fmt.Fprintf(&b, `<span>&bull; %s</span>`, escapeHTML(t.Date))
	}
	b.WriteString(`</div>`)

	if t.Editable() {
		b.WriteString(actions("tweet", index))
	}
	b.WriteString(imageWrap(t.ImageData, "proof"))
	b.WriteString(`</div>`)
	return b.String()
}

// QuestCard renders one quest with its progress bar; the completed badge
// appears only at exactly 100 percent.
func QuestCard(q model.Quest, index int) string {
	var b strings.Builder
	b.WriteString(`<div class="proof-card">`)
	fmt.Fprintf(&b, `<div class="description"><h3>%s</h3></div>`, escapeHTML(q.Name))

	completeClass := ""
	if q.Complete() {
		completeClass = " complete"
	}
	fmt.Fprintf(&b, `<div class="progress%s"><div class="bar" style="width:%d%%"></div></div>`, completeClass, model.ClampPercent(q.Percent))

	fmt.Fprintf(&b, `<div class="stats"><span>%d%%</span>`, model.ClampPercent(q.Percent))
	if q.Date != "" {
		fmt.Fprintf(&b, `<span>&bull; %s</span>`, escapeHTML(q.Date))
	}
	b.WriteString(`</div>`)

	if q.Complete() {
		b.WriteString(`<div class="badge">&#10024; Completed</div>`)
	}
	b.WriteString(actions("quest", index))
	b.WriteString(imageWrap(q.BadgeImageData, "badge"))
	b.WriteString(`</div>`)
	return b.String()
}

// CommunityCard renders one highlight with its contributor badges.
func CommunityCard(c model.Community, index int) string {
	var b strings.Builder
	b.WriteString(`<div class="proof-card">`)
	fmt.Fprintf(&b, `<div class="description"><p>%s</p></div>`, escapeHTML(c.Text))

	badges := make([]string, 0, 2)
	if c.TopContributor {
		badges = append(badges, "&#127942; Top Contributor")
	}
	if c.RoleBadge != "" {
		badges = append(badges, escapeHTML(c.RoleBadge))
	}
	if len(badges) > 0 {
		b.WriteString(`<div class="stats">`)
		for _, bd := range badges {
			fmt.Fprintf(&b, `<span>%s</span>`, bd)
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(actions("community", index))
	b.WriteString(imageWrap(c.ImageData, "community"))
	b.WriteString(`</div>`)
	return b.String()
}

func actions(kind string, index int) string {
	return fmt.Sprintf(`<div class="actions">`+
		`<button class="btn ghost small" data-action="%[1]s-edit" data-index="%[2]d">Edit</button>`+
		`<button class="btn danger small" data-action="%[1]s-delete" data-index="%[2]d">Delete</button>`+
		`</div>`, kind, index)
}

func imageWrap(dataURL, alt string) string {
	if dataURL == "" {
		return ""
	}
	return fmt.Sprintf(`<div class="image-wrap"><img class="proof-img" src="%s" alt="%s"/></div>`,
		escapeHTML(dataURL), escapeHTML(alt))
}
