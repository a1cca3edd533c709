package store

import (
	"encoding/json"
	"os"
	"strings"
)

const (
	ModeManual = "manual"
	ModeAPI    = "api"

	ThemeDark  = "dark"
	ThemeLight = "light"

	DefaultBackendURL = "http://localhost:5174"
)

// Settings are small user-facing preferences, persisted alongside the
// collections. Like the collections they are best-effort: any missing or
// invalid field falls back to its documented default.
type Settings struct {
	Mode       string `json:"mode,omitempty"`       // manual|api
	Theme      string `json:"theme,omitempty"`      // dark|light
	BackendURL string `json:"backendUrl,omitempty"` // base URL of the proxy service
}

func defaultSettings() Settings {
	return Settings{
		Mode:       ModeManual,
		Theme:      ThemeDark,
		BackendURL: DefaultBackendURL,
	}
}

// normalize replaces invalid or empty fields with defaults. Unknown values
// (e.g. a hand-edited settings file) degrade per field rather than wholesale.
func (s Settings) normalize() Settings {
	def := defaultSettings()
	if s.Mode != ModeManual && s.Mode != ModeAPI {
		s.Mode = def.Mode
	}
	if s.Theme != ThemeDark && s.Theme != ThemeLight {
		s.Theme = def.Theme
	}
	if strings.TrimSpace(s.BackendURL) == "" {
		s.BackendURL = def.BackendURL
	}
	s.BackendURL = strings.TrimRight(strings.TrimSpace(s.BackendURL), "/")
	return s
}

func (s Store) LoadSettings() Settings {
	b, err := os.ReadFile(s.path(settingsFileName))
	if err != nil {
		return defaultSettings()
	}
	var st Settings
	if err := json.Unmarshal(b, &st); err != nil {
		return defaultSettings()
	}
	return st.normalize()
}

func (s Store) SaveSettings(st Settings) error {
	return s.saveJSON(settingsFileName, st.normalize())
}
