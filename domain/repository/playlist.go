package repository

import (
	"context"

	"playlist-grid/domain/model"
)

// IPlaylistClient talks to the video provider
type IPlaylistClient interface {
	// FetchPlaylistItems issues exactly one request for up to maxResults items.
	// Failures are returned as *model.FetchError.
	FetchPlaylistItems(ctx context.Context, apiKey, playlistID string, maxResults int) (*model.Playlist, error)
}

// IPlaylist is the read-through view over the provider used by the render path
type IPlaylist interface {
	GetPlaylist(ctx context.Context, settings model.Settings) (*model.Playlist, error)
	// Invalidate drops the cached payload for the pair and returns the key it cleared.
	Invalidate(ctx context.Context, playlistID string, maxResults int) (string, error)
}
