package dto

// SettingsFormRequest is the admin settings form as submitted by the browser or as JSON
type SettingsFormRequest struct {
	APIKey     string `form:"api_key" json:"api_key"`
	PlaylistID string `form:"playlist_id" json:"playlist_id"`
	MaxResults int    `form:"max_results" json:"max_results" binding:"required,min=1,max=50"`
	CustomCSS  string `form:"custom_css" json:"custom_css"`
	Layout     string `form:"layout" json:"layout" binding:"omitempty,oneof=grid masonry"`
}

// SettingsResponse is the JSON view of the stored settings. The API key is masked.
type SettingsResponse struct {
	APIKey     string `json:"api_key"`
	PlaylistID string `json:"playlist_id"`
	MaxResults int    `json:"max_results"`
	CustomCSS  string `json:"custom_css"`
	Layout     string `json:"layout"`
	Configured bool   `json:"configured"`
}

// RefreshResponse reports the outcome of a cache invalidation
type RefreshResponse struct {
	CacheKey string `json:"cache_key"`
	Cleared  bool   `json:"cleared"`
}
