package configuration

import (
	"testing"
	"time"

	"playlist-grid/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfiguration(t *testing.T) {
	t.Run("defaults_applied", func(t *testing.T) {
		require.NotZero(t, C.App.Port, "App port should default when unset")
		require.NotEmpty(t, C.Database.Vendor, "Database vendor should default")
		require.NotEmpty(t, C.Page.Content, "Page content should default to the shortcode")
	})
}

func TestGetConfigValue(t *testing.T) {
	t.Setenv("YTPG_TEST_KEY", "")
	assert.Equal(t, "from-config", getConfigValue("from-config", "YTPG_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getConfigValue("YOUR_YOUTUBE_API_KEY", "YTPG_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getConfigValue("", "YTPG_TEST_KEY", "fallback"))

	t.Setenv("YTPG_TEST_KEY", "from-env")
	assert.Equal(t, "from-env", getConfigValue("from-config", "YTPG_TEST_KEY", "fallback"))
}

func TestGetYouTubeConfig(t *testing.T) {
	saved := C.YouTube
	t.Cleanup(func() { C.YouTube = saved })

	C.YouTube = YouTube{APIKey: "cfg-key", PlaylistID: "PLcfg", MaxResults: 12, TimeoutSeconds: 3}
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Setenv("YOUTUBE_PLAYLIST_ID", "")
	t.Setenv("YOUTUBE_ENDPOINT", "")
	t.Setenv("YOUTUBE_LAYOUT", "")
	t.Setenv("YOUTUBE_MAX_RESULTS", "80")

	cfg := GetYouTubeConfig()
	assert.Equal(t, "cfg-key", cfg.APIKey)
	assert.Equal(t, "PLcfg", cfg.PlaylistID)
	assert.Equal(t, 80, cfg.MaxResults)
	assert.Equal(t, defaultYouTubeEndpoint, cfg.Endpoint)
	assert.Equal(t, 3*time.Second, cfg.Timeout)

	seed := cfg.SeedSettings()
	assert.Equal(t, model.MaxMaxResults, seed.MaxResults)
	assert.Equal(t, model.LayoutGrid, seed.Layout)
	assert.True(t, seed.IsConfigured())
}

func TestRedisAddr(t *testing.T) {
	assert.Equal(t, "", RedisClient{}.RedisAddr())
	assert.Equal(t, "cache:6380", RedisClient{Host: "cache", Port: "6380"}.RedisAddr())
}
