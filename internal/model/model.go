package model

// Source tags where a tweet record came from. API-sourced records are
// read-only in every surface: no edit, no delete, no attached image.
type Source string

const (
	SourceManual Source = "manual"
	SourceAPI    Source = "api"
)

type Tweet struct {
	Source     Source `json:"source"`
	ExternalID string `json:"externalId,omitempty"`
	Text       string `json:"text"`
	Date       string `json:"date,omitempty"` // YYYY-MM-DD
	Likes      int    `json:"likes"`
	Retweets   int    `json:"retweets"`
	Replies    int    `json:"replies"`

	// ImageData is an inline data URL. Manual records only; SourceAPI
	// records never carry one.
	ImageData string `json:"imageData,omitempty"`
}

// Editable reports whether the record may be edited or deleted.
func (t Tweet) Editable() bool {
	return t.Source == SourceManual
}

type Quest struct {
	Name           string `json:"name"`
	Date           string `json:"date,omitempty"` // YYYY-MM-DD
	Percent        int    `json:"percent"`        // 0..100
	BadgeImageData string `json:"badgeImageData,omitempty"`
}

// Complete reports whether the completion badge is shown.
func (q Quest) Complete() bool {
	return q.Percent == 100
}

type Community struct {
	Text           string `json:"text"`
	TopContributor bool   `json:"topContributor"`
	RoleBadge      string `json:"roleBadge,omitempty"`
	ImageData      string `json:"imageData,omitempty"`
}

// ClampPercent bounds a quest completion value to [0,100].
func ClampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
