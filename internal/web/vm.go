package web

import (
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"promodash/internal/chart"
	"promodash/internal/dashboard"
	"promodash/internal/render"
	"promodash/internal/store"
)

// pageState is the display state carried in the page URL: view modes,
// carousel positions and the edit/confirm cursors. The store never sees
// any of it.
type pageState struct {
	tweetView     string
	communityView string
	tweetAt       int
	communityAt   int

	editKind     string
	editIndex    int
	confirmKind  string
	confirmIndex int

	username   string
	count      string
	fetchError string
}

func pageStateFromRequest(r *http.Request) pageState {
	q := r.URL.Query()
	p := pageState{
		tweetView:     viewOrDefault(q.Get("tweetView")),
		communityView: viewOrDefault(q.Get("communityView")),
		tweetAt:       atoiOrZero(q.Get("tweetAt")),
		communityAt:   atoiOrZero(q.Get("communityAt")),
		username:      strings.TrimSpace(q.Get("username")),
		count:         strings.TrimSpace(q.Get("count")),
		fetchError:    strings.TrimSpace(q.Get("fetchError")),
	}
	p.editKind, p.editIndex = parseCursor(q.Get("edit"))
	p.confirmKind, p.confirmIndex = parseCursor(q.Get("confirm"))
	return p
}

func viewOrDefault(v string) string {
	if v == string(dashboard.ViewGrid) {
		return string(dashboard.ViewGrid)
	}
	return string(dashboard.ViewCarousel)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseCursor splits a "tweet-2" style token.
func parseCursor(s string) (kind string, index int) {
	kind, idxStr, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return "", dashboard.NoEdit
	}
	i, err := strconv.Atoi(idxStr)
	if err != nil || i < 0 {
		return "", dashboard.NoEdit
	}
	switch kind {
	case "tweet", "quest", "community":
		return kind, i
	}
	return "", dashboard.NoEdit
}

// urlWith rebuilds the page URL from the state, applying overrides.
// Defaults are omitted to keep URLs short.
func (p pageState) urlWith(overrides map[string]string) string {
	q := url.Values{}
	set := func(key, val, def string) {
		if ov, ok := overrides[key]; ok {
			val = ov
		}
		if val != "" && val != def {
			q.Set(key, val)
		}
	}
	set("tweetView", p.tweetView, string(dashboard.ViewCarousel))
	set("communityView", p.communityView, string(dashboard.ViewCarousel))
	set("tweetAt", strconv.Itoa(p.tweetAt), "0")
	set("communityAt", strconv.Itoa(p.communityAt), "0")
	set("edit", cursorToken(p.editKind, p.editIndex), "")
	set("confirm", cursorToken(p.confirmKind, p.confirmIndex), "")
	if enc := q.Encode(); enc != "" {
		return "/?" + enc
	}
	return "/"
}

func cursorToken(kind string, index int) string {
	if kind == "" || index < 0 {
		return ""
	}
	return kind + "-" + strconv.Itoa(index)
}

type slotVM struct {
	Index      int
	Card       template.HTML
	Confirming bool
}

type sectionURLs struct {
	Carousel string
	Grid     string
	Prev     string
	Next     string
}

type tweetsVM struct {
	View      string
	Count     int
	At        int
	Slots     []slotVM
	EditIndex int
	Draft     dashboard.TweetDraft
	URLs      sectionURLs
}

type questsVM struct {
	Count     int
	Slots     []slotVM
	EditIndex int
	Draft     dashboard.QuestDraft
}

type communityVM struct {
	View      string
	Count     int
	At        int
	Slots     []slotVM
	EditIndex int
	Draft     dashboard.CommunityDraft
	URLs      sectionURLs
}

type homeVM struct {
	Theme      string
	Mode       string
	APIMode    bool
	BackendURL string
	Username   string
	Count      string
	FetchError string
	CancelURL  string
	Tweets     tweetsVM
	Quests     questsVM
	Community  communityVM
	Chart      template.JS
	ChartEmpty bool
}

func buildHomeVM(st *dashboard.State, cfg store.Settings, p pageState) homeVM {
	series := chart.FromTweets(st.Tweets)
	vm := homeVM{
		Theme:      cfg.Theme,
		Mode:       cfg.Mode,
		APIMode:    cfg.Mode == store.ModeAPI,
		BackendURL: cfg.BackendURL,
		Username:   p.username,
		Count:      p.count,
		FetchError: p.fetchError,
		CancelURL:  p.urlWith(map[string]string{"edit": "", "confirm": ""}),
		Chart:      template.JS(series.JSON()),
		ChartEmpty: series.Empty(),
	}
	vm.Tweets = buildTweetsVM(st, p)
	vm.Quests = buildQuestsVM(st, p)
	vm.Community = buildCommunityVM(st, p)
	return vm
}

func buildTweetsVM(st *dashboard.State, p pageState) tweetsVM {
	view := render.TweetView(st.Tweets, dashboard.ViewMode(p.tweetView))
	at := clampAt(p.tweetAt, len(view.Cards))
	vm := tweetsVM{
		View:      p.tweetView,
		Count:     len(view.Cards),
		At:        at,
		EditIndex: dashboard.NoEdit,
		URLs: sectionURLs{
			Carousel: p.urlWith(map[string]string{"tweetView": "carousel", "edit": "", "confirm": ""}),
			Grid:     p.urlWith(map[string]string{"tweetView": "grid", "edit": "", "confirm": ""}),
			Prev:     p.urlWith(map[string]string{"tweetAt": strconv.Itoa(prevAt(at, len(view.Cards))), "edit": "", "confirm": ""}),
			Next:     p.urlWith(map[string]string{"tweetAt": strconv.Itoa(nextAt(at, len(view.Cards))), "edit": "", "confirm": ""}),
		},
	}
	if p.editKind == "tweet" {
		if d, ok := st.BeginEditTweet(p.editIndex); ok {
			vm.EditIndex = p.editIndex
			vm.Draft = d
		}
	}
	for i, card := range view.Cards {
		if p.tweetView == string(dashboard.ViewCarousel) && i != at {
			continue
		}
		vm.Slots = append(vm.Slots, slotVM{
			Index:      i,
			Card:       template.HTML(card),
			Confirming: p.confirmKind == "tweet" && p.confirmIndex == i && st.Tweets[i].Editable(),
		})
	}
	return vm
}

func buildQuestsVM(st *dashboard.State, p pageState) questsVM {
	view := render.QuestView(st.Quests)
	vm := questsVM{Count: len(view.Cards), EditIndex: dashboard.NoEdit}
	if p.editKind == "quest" {
		if d, ok := st.BeginEditQuest(p.editIndex); ok {
			vm.EditIndex = p.editIndex
			vm.Draft = d
		}
	}
	for i, card := range view.Cards {
		vm.Slots = append(vm.Slots, slotVM{
			Index:      i,
			Card:       template.HTML(card),
			Confirming: p.confirmKind == "quest" && p.confirmIndex == i,
		})
	}
	return vm
}

func buildCommunityVM(st *dashboard.State, p pageState) communityVM {
	view := render.CommunityView(st.Community, dashboard.ViewMode(p.communityView))
	at := clampAt(p.communityAt, len(view.Cards))
	vm := communityVM{
		View:      p.communityView,
		Count:     len(view.Cards),
		At:        at,
		EditIndex: dashboard.NoEdit,
		URLs: sectionURLs{
			Carousel: p.urlWith(map[string]string{"communityView": "carousel", "edit": "", "confirm": ""}),
			Grid:     p.urlWith(map[string]string{"communityView": "grid", "edit": "", "confirm": ""}),
			Prev:     p.urlWith(map[string]string{"communityAt": strconv.Itoa(prevAt(at, len(view.Cards))), "edit": "", "confirm": ""}),
			Next:     p.urlWith(map[string]string{"communityAt": strconv.Itoa(nextAt(at, len(view.Cards))), "edit": "", "confirm": ""}),
		},
	}
	if p.editKind == "community" {
		if d, ok := st.BeginEditCommunity(p.editIndex); ok {
			vm.EditIndex = p.editIndex
			vm.Draft = d
		}
	}
	for i, card := range view.Cards {
		if p.communityView == string(dashboard.ViewCarousel) && i != at {
			continue
		}
		vm.Slots = append(vm.Slots, slotVM{
			Index:      i,
			Card:       template.HTML(card),
			Confirming: p.confirmKind == "community" && p.confirmIndex == i,
		})
	}
	return vm
}

func clampAt(at, n int) int {
	if n <= 0 {
		return 0
	}
	if at < 0 {
		return 0
	}
	if at >= n {
		return n - 1
	}
	return at
}

func prevAt(at, n int) int {
	return clampAt(at-1, n)
}

func nextAt(at, n int) int {
	return clampAt(at+1, n)
}
