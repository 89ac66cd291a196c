package model

import "time"

// WatchURLPrefix is prepended to a video id to build its public watch page.
const WatchURLPrefix = "https://www.youtube.com/watch?v="

// Thumbnail is a single thumbnail rendition reported by the provider
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// PlaylistItem is one entry of a playlist as returned by the playlistItems endpoint (snippet part)
type PlaylistItem struct {
	ID          string `json:"id"`
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Position    int64  `json:"position"`
	PublishedAt string `json:"published_at"`
	Thumbnails  struct {
		Default Thumbnail `json:"default"`
		Medium  Thumbnail `json:"medium"`
		High    Thumbnail `json:"high"`
	} `json:"thumbnails"`
}

// Playlist is the cached payload for one (playlist, max results) pair
type Playlist struct {
	PlaylistID   string         `json:"playlist_id"`
	ETag         string         `json:"etag"`
	TotalResults int64          `json:"total_results"`
	Items        []PlaylistItem `json:"items"`
	FetchedAt    time.Time      `json:"fetched_at"`
}

// VideoItem is the render-time view of a playlist item
type VideoItem struct {
	VideoID      string
	Title        string
	Description  string
	ThumbnailURL string
	WatchURL     string
}

// ThumbnailURL prefers the high resolution rendition and falls back to the default one.
func (i PlaylistItem) ThumbnailURL() string {
	if i.Thumbnails.High.URL != "" {
		return i.Thumbnails.High.URL
	}
	return i.Thumbnails.Default.URL
}

func (i PlaylistItem) ToVideoItem() VideoItem {
	return VideoItem{
		VideoID:      i.VideoID,
		Title:        i.Title,
		Description:  i.Description,
		ThumbnailURL: i.ThumbnailURL(),
		WatchURL:     WatchURLPrefix + i.VideoID,
	}
}

// VideoItems derives the render-time items, keeping playlist order.
func (p *Playlist) VideoItems() []VideoItem {
	if p == nil {
		return nil
	}
	out := make([]VideoItem, 0, len(p.Items))
	for _, item := range p.Items {
		out = append(out, item.ToVideoItem())
	}
	return out
}
