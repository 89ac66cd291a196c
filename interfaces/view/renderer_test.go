package view

import (
	"bytes"
	"strings"
	"testing"

	"playlist-grid/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []model.VideoItem {
	return []model.VideoItem{
		{
			VideoID:      "vid1",
			Title:        "First <video>",
			Description:  "<b>Bold</b> intro & more",
			ThumbnailURL: "https://i.ytimg.com/vi/vid1/hqdefault.jpg",
			WatchURL:     model.WatchURLPrefix + "vid1",
		},
		{
			VideoID:      "vid2",
			Title:        "Second",
			ThumbnailURL: "https://i.ytimg.com/vi/vid2/default.jpg",
			WatchURL:     model.WatchURLPrefix + "vid2",
		},
	}
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	return r
}

func TestRenderPlaylist_Grid(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.RenderPlaylist(model.LayoutGrid, sampleItems())
	require.NoError(t, err)

	assert.Contains(t, out, `<div class="ytpg-container">`)
	assert.Equal(t, 2, strings.Count(out, `class="ytpg-video-card"`))
	assert.Contains(t, out, `First &lt;video&gt;`)
	assert.NotContains(t, out, "<video>")
	assert.Contains(t, out, `href="https://www.youtube.com/watch?v=vid1"`)
	assert.Contains(t, out, `target="_blank" rel="noopener noreferrer"`)
	assert.Contains(t, out, `loading="lazy"`)
	assert.Contains(t, out, "Bold intro &amp; more")
	assert.NotContains(t, out, "&lt;b&gt;")
	// the second card has no description paragraph
	assert.Equal(t, 1, strings.Count(out, `class="ytpg-description"`))
}

func TestRenderPlaylist_Masonry(t *testing.T) {
	r := newTestRenderer(t)
	items := sampleItems()
	items[0].Description = strings.Repeat("word ", 40)

	out, err := r.RenderPlaylist(model.LayoutMasonry, items)
	require.NoError(t, err)

	assert.Contains(t, out, `<div class="ytpg-maso-container">`)
	assert.NotContains(t, out, `ytpg-video-card`)
	assert.Contains(t, out, strings.TrimSpace(strings.Repeat("word ", 30))+"...")
	assert.Contains(t, out, "-webkit-line-clamp: ")
}

func TestRenderPlaylist_UnknownLayoutFallsBackToGrid(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.RenderPlaylist(model.Layout("tiles"), sampleItems())
	require.NoError(t, err)
	assert.Contains(t, out, `class="ytpg-grid"`)
}

func TestRenderPlaylist_Idempotent(t *testing.T) {
	r := newTestRenderer(t)

	for _, layout := range []model.Layout{model.LayoutGrid, model.LayoutMasonry} {
		first, err := r.RenderPlaylist(layout, sampleItems())
		require.NoError(t, err)
		second, err := r.RenderPlaylist(layout, sampleItems())
		require.NoError(t, err)
		assert.Equal(t, first, second, string(layout))
	}
}

func TestRenderError(t *testing.T) {
	r := newTestRenderer(t)

	assert.Equal(t,
		`<div class="ytpg-error">No videos found in this playlist.</div>`,
		r.RenderError("No videos found in this playlist."))
	assert.Equal(t,
		`<div class="ytpg-error">Error fetching videos: a &lt;b&gt; c</div>`,
		r.RenderError("Error fetching videos: a <b> c"))
}

func TestRenderPage(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	err := r.RenderPage(&buf, "My <Page>", `<div class="ytpg-error">x</div>`, ".x{color:red}</style><script>")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<title>My &lt;Page&gt;</title>")
	assert.Contains(t, out, `<div class="ytpg-error">x</div>`)
	assert.Contains(t, out, ".ytpg-grid")
	assert.Contains(t, out, ".x{color:red}")
	assert.Equal(t, 1, strings.Count(strings.ToLower(out), "</style"))
}

func TestRenderSettings(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	err := r.RenderSettings(&buf, SettingsFormView{
		Settings: model.Settings{
			APIKey:     "key",
			PlaylistID: "PLabc",
			MaxResults: 12,
			Layout:     model.LayoutMasonry,
		},
		Notice: "Settings saved.",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `value="PLabc"`)
	assert.Contains(t, out, `value="12" min="1" max="50"`)
	assert.Contains(t, out, `<option value="masonry" selected>masonry</option>`)
	assert.Contains(t, out, "Settings saved.")
}

func TestTrimWords(t *testing.T) {
	assert.Equal(t, "one two...", TrimWords("<p>one \t two</p><p>three</p>", 2, "..."))
	assert.Equal(t, "one two", TrimWords("one two", 2, "..."))
	assert.Equal(t, "", TrimWords("", 30, "..."))
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Just a description", "Just a description"},
		{"tags removed", "<b>Tom</b> &amp; Jerry", "Tom & Jerry"},
		{"lone less-than kept", "I <3 this track. Full lyrics below.", "I <3 this track. Full lyrics below."},
		{"arrow and newlines kept", "Chapters ->\nIntro\nFollow me https://x.com", "Chapters ->\nIntro\nFollow me https://x.com"},
		{"comparison kept", "a < b > c", "a < b > c"},
		{"script body dropped", "before<script>alert(1)</script>after", "beforeafter"},
		{"paragraphs become lines", "<p>one</p><p>two</p>", "one\ntwo\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.in))
		})
	}
}

func TestTrimWords_TextThatLooksLikeMarkup(t *testing.T) {
	in := "I <3 this track. Full lyrics, credits and tour dates below.\nTour: Berlin, Paris"
	assert.Equal(t, "I <3 this track. Full lyrics, credits and tour dates below. Tour: Berlin, Paris", TrimWords(in, 30, "..."))
	assert.Equal(t, "I <3 this...", TrimWords(in, 3, "..."))
	assert.Equal(t, "Chapters -> Intro Follow me", TrimWords("Chapters ->\nIntro\nFollow me", 30, "..."))
}

func TestRenderPlaylist_DescriptionsKeepLiteralBrackets(t *testing.T) {
	r := newTestRenderer(t)
	items := []model.VideoItem{
		{VideoID: "vid1", Title: "Love", Description: "I <3 this track. Full lyrics below.", WatchURL: model.WatchURLPrefix + "vid1"},
		{VideoID: "vid2", Title: "Chapters", Description: "Chapters ->\nIntro\nFollow me", WatchURL: model.WatchURLPrefix + "vid2"},
	}

	grid, err := r.RenderPlaylist(model.LayoutGrid, items)
	require.NoError(t, err)
	assert.Contains(t, grid, "I &lt;3 this track. Full lyrics below.")
	assert.Contains(t, grid, "Chapters -&gt;\nIntro\nFollow me")

	masonry, err := r.RenderPlaylist(model.LayoutMasonry, items)
	require.NoError(t, err)
	assert.Contains(t, masonry, "I &lt;3 this track. Full lyrics below.")
	assert.Contains(t, masonry, "Chapters -&gt; Intro Follow me")
}

func TestLineClampRange(t *testing.T) {
	for _, id := range []string{"", "a", "vid1", "dQw4w9WgXcQ", "PL-xyz_123"} {
		c := lineClamp(id)
		assert.GreaterOrEqual(t, c, minLineClamp)
		assert.LessOrEqual(t, c, maxLineClamp)
		assert.Equal(t, c, lineClamp(id))
	}
}
