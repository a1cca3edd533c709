package proxy

import (
	"os"
	"strings"
)

const (
	DefaultAddr         = ":5174"
	DefaultClientOrigin = "http://localhost:5173"
)

// ConfigFromEnv reads PORT, CLIENT_ORIGIN and TWITTER_BEARER_TOKEN.
// The serve command loads .env first, so a local token file works
// without exporting anything.
func ConfigFromEnv() ServerConfig {
	cfg := ServerConfig{
		Addr:         DefaultAddr,
		ClientOrigin: DefaultClientOrigin,
		BearerToken:  strings.TrimSpace(os.Getenv("TWITTER_BEARER_TOKEN")),
	}
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Addr = ":" + strings.TrimPrefix(port, ":")
	}
	if origin := strings.TrimSpace(os.Getenv("CLIENT_ORIGIN")); origin != "" {
		cfg.ClientOrigin = origin
	}
	return cfg
}
