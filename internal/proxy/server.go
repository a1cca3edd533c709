// Package proxy is the stateless backend that keeps the X API bearer
// token off the dashboard surfaces. It resolves a username to a user id,
// fetches that user's recent posts, and relays the raw list. Dashboard
// state never passes through here.
package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"promodash/internal/twitter"
)

// Upstream is the slice of the X API the proxy needs.
type Upstream interface {
	UserIDByUsername(ctx context.Context, username string) (string, error)
	RecentTweets(ctx context.Context, userID string, max int) ([]twitter.Tweet, error)
}

type ServerConfig struct {
	Addr         string
	ClientOrigin string
	BearerToken  string
}

type Server struct {
	cfg      ServerConfig
	upstream Upstream
}

// NewServer builds the proxy. A missing bearer token is not a boot
// error: the server starts and reports the missing credential per
// request, so the dashboard can surface it.
func NewServer(cfg ServerConfig, upstream Upstream) (*Server, error) {
	cfg.Addr = strings.TrimSpace(cfg.Addr)
	cfg.ClientOrigin = strings.TrimSpace(cfg.ClientOrigin)
	cfg.BearerToken = strings.TrimSpace(cfg.BearerToken)
	if cfg.Addr == "" {
		return nil, errors.New("proxy: addr is empty")
	}
	if upstream == nil && cfg.BearerToken != "" {
		upstream = twitter.NewClient(nil, cfg.BearerToken)
	}
	return &Server{cfg: cfg, upstream: upstream}, nil
}

func (s *Server) Addr() string { return s.cfg.Addr }

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleHealth)
	mux.HandleFunc("GET /api/twitter", s.handleTwitter)
	return s.cors(mux)
}

// cors answers preflight and tags every response with the configured
// dashboard origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.ClientOrigin != "" {
			w.Header().Set("Access-Control-Allow-Origin", s.cfg.ClientOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleTwitter(w http.ResponseWriter, r *http.Request) {
	if s.cfg.BearerToken == "" || s.upstream == nil {
		writeJSON(w, http.StatusInternalServerError, errBody("Missing TWITTER_BEARER_TOKEN"))
		return
	}
	username := strings.TrimSpace(r.URL.Query().Get("username"))
	if username == "" {
		writeJSON(w, http.StatusBadRequest, errBody("username is required"))
		return
	}
	count := twitter.ParseCount(r.URL.Query().Get("count"))

	ctx := r.Context()
	userID, err := s.upstream.UserIDByUsername(ctx, username)
	if errors.Is(err, twitter.ErrUserNotFound) {
		writeJSON(w, http.StatusNotFound, errBody("User not found"))
		return
	}
	if err != nil {
		s.upstreamError(w, err)
		return
	}

	tweets, err := s.upstream.RecentTweets(ctx, userID, count)
	if err != nil {
		s.upstreamError(w, err)
		return
	}
	if tweets == nil {
		tweets = []twitter.Tweet{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"tweets": tweets})
}

// upstreamError relays the upstream status code when one is known and
// includes whatever diagnostics the API returned. The raw failure is
// logged here; clients only see the status and details payload.
func (s *Server) upstreamError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var details any = err.Error()
	var apiErr *twitter.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode != 0 {
			status = apiErr.StatusCode
		}
		if len(apiErr.Body) > 0 {
			details = apiErr.Body
		}
	}
	log.Printf("proxy: upstream request failed: %v", err)
	writeJSON(w, status, map[string]any{
		"error":   "Twitter API request failed",
		"details": details,
	})
}

func errBody(msg string) map[string]any {
	return map[string]any{"error": msg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
