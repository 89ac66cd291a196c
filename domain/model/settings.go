package model

import (
	"strings"
	"time"
)

// SettingsName is the name of the single settings record
const SettingsName = "ytpg_settings"

const (
	DefaultMaxResults = 6
	MinMaxResults     = 1
	MaxMaxResults     = 50
)

// Layout selects one of the interchangeable render templates
type Layout string

const (
	LayoutGrid    Layout = "grid"
	LayoutMasonry Layout = "masonry"
)

// ParseLayout maps a user supplied layout name to a known layout.
func ParseLayout(s string) (Layout, bool) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case LayoutGrid, "standard", "default":
		return LayoutGrid, true
	case LayoutMasonry, "maso":
		return LayoutMasonry, true
	}
	return "", false
}

// Settings holds everything the admin form persists
type Settings struct {
	APIKey     string    `json:"api_key"`
	PlaylistID string    `json:"playlist_id"`
	MaxResults int       `json:"max_results"`
	CustomCSS  string    `json:"custom_css"`
	Layout     Layout    `json:"layout"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsConfigured reports whether the fields needed to call the provider are present
func (s Settings) IsConfigured() bool {
	return strings.TrimSpace(s.APIKey) != "" && strings.TrimSpace(s.PlaylistID) != ""
}

// Normalize fills defaults and clamps MaxResults into 1..50.
func (s Settings) Normalize() Settings {
	s.APIKey = strings.TrimSpace(s.APIKey)
	s.PlaylistID = strings.TrimSpace(s.PlaylistID)
	s.MaxResults = ClampMaxResults(s.MaxResults)
	if l, ok := ParseLayout(string(s.Layout)); ok {
		s.Layout = l
	} else {
		s.Layout = LayoutGrid
	}
	return s
}

// ClampMaxResults treats zero as "unset" and clamps everything else into range.
func ClampMaxResults(n int) int {
	switch {
	case n == 0:
		return DefaultMaxResults
	case n < MinMaxResults:
		return MinMaxResults
	case n > MaxMaxResults:
		return MaxMaxResults
	}
	return n
}
