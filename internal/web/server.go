// Package web serves the promotional dashboard as a server-rendered HTML
// page. All collection state lives in the local store; each request loads
// it fresh, applies the operation and redirects back, so the server itself
// stays stateless. Display state (view modes, carousel positions, the edit
// and confirm cursors) travels in the page URL.
package web

import (
	"embed"
	"encoding/base64"
	"errors"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"strings"

	"promodash/internal/apiclient"
	"promodash/internal/chart"
	"promodash/internal/dashboard"
	"promodash/internal/store"
)

//go:embed templates/*.html static/*.js static/*.css
var assetsFS embed.FS

type ServerConfig struct {
	Addr string
	Dir  string
}

type Server struct {
	cfg  ServerConfig
	tmpl *template.Template
}

func NewServer(cfg ServerConfig) (*Server, error) {
	cfg.Addr = strings.TrimSpace(cfg.Addr)
	cfg.Dir = strings.TrimSpace(cfg.Dir)
	if cfg.Addr == "" {
		return nil, errors.New("web: addr is empty")
	}
	if cfg.Dir == "" {
		return nil, errors.New("web: dir is empty")
	}
	tmpl, err := template.New("base").Funcs(template.FuncMap{
		"trim": strings.TrimSpace,
		"add1": func(n int) int { return n + 1 },
	}).ParseFS(assetsFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, tmpl: tmpl}, nil
}

func (s *Server) Addr() string { return s.cfg.Addr }

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /static/app.css", s.handleAppCSS)
	mux.HandleFunc("GET /static/app.js", s.handleAppJS)
	mux.HandleFunc("GET /chart.json", s.handleChartJSON)
	mux.HandleFunc("GET /", s.handleHome)
	mux.HandleFunc("POST /tweets", s.handleTweetAdd)
	mux.HandleFunc("POST /tweets/{index}/edit", s.handleTweetEdit)
	mux.HandleFunc("POST /tweets/{index}/delete", s.handleTweetDelete)
	mux.HandleFunc("POST /quests", s.handleQuestAdd)
	mux.HandleFunc("POST /quests/{index}/edit", s.handleQuestEdit)
	mux.HandleFunc("POST /quests/{index}/delete", s.handleQuestDelete)
	mux.HandleFunc("POST /community", s.handleCommunityAdd)
	mux.HandleFunc("POST /community/{index}/edit", s.handleCommunityEdit)
	mux.HandleFunc("POST /community/{index}/delete", s.handleCommunityDelete)
	mux.HandleFunc("POST /settings/theme", s.handleThemeToggle)
	mux.HandleFunc("POST /settings/mode", s.handleModeToggle)
	mux.HandleFunc("POST /fetch", s.handleFetch)
	return mux
}

func (s *Server) state() *dashboard.State {
	return dashboard.Load(store.Store{Dir: s.cfg.Dir})
}

func (s *Server) settings() store.Settings {
	return store.Store{Dir: s.cfg.Dir}.LoadSettings()
}

func redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	ref := strings.TrimSpace(r.Header.Get("Referer"))
	if ref != "" {
		http.Redirect(w, r, ref, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, fallback, http.StatusSeeOther)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleAppCSS(w http.ResponseWriter, r *http.Request) {
	serveAsset(w, r, "static/app.css", "text/css; charset=utf-8")
}

func (s *Server) handleAppJS(w http.ResponseWriter, r *http.Request) {
	serveAsset(w, r, "static/app.js", "application/javascript; charset=utf-8")
}

func serveAsset(w http.ResponseWriter, r *http.Request, name, contentType string) {
	b, err := assetsFS.ReadFile(name)
	if err != nil || len(b) == 0 {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (s *Server) handleChartJSON(w http.ResponseWriter, r *http.Request) {
	series := chart.FromTweets(s.state().Tweets)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = io.WriteString(w, series.JSON())
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	st := s.state()
	vm := buildHomeVM(st, s.settings(), pageStateFromRequest(r))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "dashboard.html", vm); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// -- tweets --

func (s *Server) handleTweetAdd(w http.ResponseWriter, r *http.Request) {
	st := s.state()
	st.AddTweet(tweetDraftFromForm(r))
	redirectBack(w, r, "/")
}

func (s *Server) handleTweetEdit(w http.ResponseWriter, r *http.Request) {
	i, ok := pathIndex(r)
	if !ok {
		http.Error(w, "missing index", http.StatusBadRequest)
		return
	}
	st := s.state()
	st.CommitEditTweet(i, tweetDraftFromForm(r))
	redirectBack(w, r, "/")
}

func (s *Server) handleTweetDelete(w http.ResponseWriter, r *http.Request) {
	i, ok := pathIndex(r)
	if !ok {
		http.Error(w, "missing index", http.StatusBadRequest)
		return
	}
	st := s.state()
	st.RemoveTweet(i)
	redirectBack(w, r, "/")
}

// -- quests --

func (s *Server) handleQuestAdd(w http.ResponseWriter, r *http.Request) {
	st := s.state()
	st.AddQuest(questDraftFromForm(r))
	redirectBack(w, r, "/")
}

func (s *Server) handleQuestEdit(w http.ResponseWriter, r *http.Request) {
	i, ok := pathIndex(r)
	if !ok {
		http.Error(w, "missing index", http.StatusBadRequest)
		return
	}
	st := s.state()
	st.CommitEditQuest(i, questDraftFromForm(r))
	redirectBack(w, r, "/")
}

func (s *Server) handleQuestDelete(w http.ResponseWriter, r *http.Request) {
	i, ok := pathIndex(r)
	if !ok {
		http.Error(w, "missing index", http.StatusBadRequest)
		return
	}
	st := s.state()
	st.RemoveQuest(i)
	redirectBack(w, r, "/")
}

// -- community --

func (s *Server) handleCommunityAdd(w http.ResponseWriter, r *http.Request) {
	st := s.state()
	st.AddCommunity(communityDraftFromForm(r))
	redirectBack(w, r, "/")
}

func (s *Server) handleCommunityEdit(w http.ResponseWriter, r *http.Request) {
	i, ok := pathIndex(r)
	if !ok {
		http.Error(w, "missing index", http.StatusBadRequest)
		return
	}
	st := s.state()
	st.CommitEditCommunity(i, communityDraftFromForm(r))
	redirectBack(w, r, "/")
}

func (s *Server) handleCommunityDelete(w http.ResponseWriter, r *http.Request) {
	i, ok := pathIndex(r)
	if !ok {
		http.Error(w, "missing index", http.StatusBadRequest)
		return
	}
	st := s.state()
	st.RemoveCommunity(i)
	redirectBack(w, r, "/")
}

// -- settings --

func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	sto := store.Store{Dir: s.cfg.Dir}
	cfg := sto.LoadSettings()
	if cfg.Theme == store.ThemeDark {
		cfg.Theme = store.ThemeLight
	} else {
		cfg.Theme = store.ThemeDark
	}
	if err := sto.SaveSettings(cfg); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	redirectBack(w, r, "/")
}

func (s *Server) handleModeToggle(w http.ResponseWriter, r *http.Request) {
	sto := store.Store{Dir: s.cfg.Dir}
	cfg := sto.LoadSettings()
	if cfg.Mode == store.ModeAPI {
		cfg.Mode = store.ModeManual
	} else {
		cfg.Mode = store.ModeAPI
	}
	if err := sto.SaveSettings(cfg); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	redirectBack(w, r, "/")
}

// handleFetch pulls recent posts through the proxy and replaces the tweet
// collection. Failures land back on the page as a banner instead of an
// error response.
func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	username := strings.TrimSpace(r.Form.Get("username"))
	count, err := strconv.Atoi(strings.TrimSpace(r.Form.Get("count")))
	if err != nil {
		count = 5
	}

	cfg := s.settings()
	client := apiclient.New(cfg.BackendURL)
	tweets, err := client.FetchRecent(r.Context(), username, count)
	if err != nil {
		http.Redirect(w, r, "/?fetchError="+template.URLQueryEscaper(err.Error()), http.StatusSeeOther)
		return
	}
	st := s.state()
	st.ReplaceTweets(tweets)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// -- form helpers --

func pathIndex(r *http.Request) (int, bool) {
	raw := strings.TrimSpace(r.PathValue("index"))
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

func formInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(r.Form.Get(key)))
	if err != nil {
		return 0
	}
	return n
}

// formImage reads an uploaded file into a data URL, matching how card
// images are stored. No upload means "keep what was there".
func formImage(r *http.Request, key string) string {
	f, hdr, err := r.FormFile(key)
	if err != nil || hdr == nil {
		return ""
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil || len(b) == 0 {
		return ""
	}
	contentType := hdr.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(b)
}

func tweetDraftFromForm(r *http.Request) dashboard.TweetDraft {
	_ = r.ParseMultipartForm(8 << 20)
	_ = r.ParseForm()
	return dashboard.TweetDraft{
		Text:      r.Form.Get("text"),
		Date:      strings.TrimSpace(r.Form.Get("date")),
		Likes:     formInt(r, "likes"),
		Retweets:  formInt(r, "retweets"),
		Replies:   formInt(r, "replies"),
		ImageData: formImage(r, "image"),
	}
}

func questDraftFromForm(r *http.Request) dashboard.QuestDraft {
	_ = r.ParseMultipartForm(8 << 20)
	_ = r.ParseForm()
	return dashboard.QuestDraft{
		Name:           r.Form.Get("name"),
		Date:           strings.TrimSpace(r.Form.Get("date")),
		Percent:        formInt(r, "percent"),
		BadgeImageData: formImage(r, "image"),
	}
}

func communityDraftFromForm(r *http.Request) dashboard.CommunityDraft {
	_ = r.ParseMultipartForm(8 << 20)
	_ = r.ParseForm()
	return dashboard.CommunityDraft{
		Text:           r.Form.Get("text"),
		TopContributor: r.Form.Get("topContributor") != "",
		RoleBadge:      r.Form.Get("roleBadge"),
		ImageData:      formImage(r, "image"),
	}
}
