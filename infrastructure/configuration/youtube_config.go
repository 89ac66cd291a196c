package configuration

import (
	"os"
	"strconv"
	"strings"
	"time"

	"playlist-grid/domain/model"
)

const (
	defaultYouTubeEndpoint = "https://www.googleapis.com/"
	defaultYouTubeTimeout  = 15 * time.Second
)

// YouTubeConfig is the resolved provider configuration
type YouTubeConfig struct {
	APIKey     string
	PlaylistID string
	MaxResults int
	Layout     string
	CustomCSS  string
	Endpoint   string
	Timeout    time.Duration
}

// GetYouTubeConfig returns YouTube configuration from JSON config with environment variable override
func GetYouTubeConfig() *YouTubeConfig {
	cfg := &YouTubeConfig{
		APIKey:     getConfigValue(C.YouTube.APIKey, "YOUTUBE_API_KEY", ""),
		PlaylistID: getConfigValue(C.YouTube.PlaylistID, "YOUTUBE_PLAYLIST_ID", ""),
		Layout:     getConfigValue(C.YouTube.Layout, "YOUTUBE_LAYOUT", string(model.LayoutGrid)),
		CustomCSS:  C.YouTube.CustomCSS,
		Endpoint:   getConfigValue(C.YouTube.Endpoint, "YOUTUBE_ENDPOINT", defaultYouTubeEndpoint),
		MaxResults: C.YouTube.MaxResults,
		Timeout:    defaultYouTubeTimeout,
	}
	if v := os.Getenv("YOUTUBE_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxResults = n
		}
	}
	if C.YouTube.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(C.YouTube.TimeoutSeconds) * time.Second
	}
	return cfg
}

// SeedSettings converts the configuration into the initial settings record.
func (c *YouTubeConfig) SeedSettings() model.Settings {
	return model.Settings{
		APIKey:     c.APIKey,
		PlaylistID: c.PlaylistID,
		MaxResults: c.MaxResults,
		CustomCSS:  c.CustomCSS,
		Layout:     model.Layout(c.Layout),
	}.Normalize()
}

// getConfigValue gets value from env first, then config, then default
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	// Placeholders such as YOUR_YOUTUBE_API_KEY count as unset
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}
