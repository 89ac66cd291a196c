package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"playlist-grid/domain/dto"
	"playlist-grid/domain/model"
	"playlist-grid/domain/repository"
	"playlist-grid/infrastructure/logger"
)

const (
	MsgConfigurationMissing = "Please configure the YouTube API key and Playlist ID in the plugin settings."
	MsgEmptyResult          = "No videos found in this playlist."
	msgFetchErrorPrefix     = "Error fetching videos: "
	msgRenderFailed         = "Unable to display videos right now."
)

// IRenderer produces the playlist markup and the inline error block
type IRenderer interface {
	RenderPlaylist(layout model.Layout, items []model.VideoItem) (string, error)
	RenderError(message string) string
}

// IPlaylistUseCase drives the shortcode render path
type IPlaylistUseCase interface {
	// RenderGrid returns either the playlist markup or an error block; it never fails.
	// layoutOverride, when it names a known layout, replaces the configured one.
	RenderGrid(ctx context.Context, layoutOverride string) string
	// RefreshCache drops the cached payload for the configured playlist.
	RefreshCache(ctx context.Context) (*dto.RefreshResponse, error)
}

type PlaylistUseCase struct {
	settings     ISettingsUseCase
	playlistRepo repository.IPlaylist
	renderer     IRenderer
}

func NewPlaylistUseCase(settings ISettingsUseCase, playlistRepo repository.IPlaylist, renderer IRenderer) IPlaylistUseCase {
	return &PlaylistUseCase{settings: settings, playlistRepo: playlistRepo, renderer: renderer}
}

func (u *PlaylistUseCase) RenderGrid(ctx context.Context, layoutOverride string) string {
	settings, _ := u.settings.GetSettings(ctx)
	if !settings.IsConfigured() {
		return u.renderer.RenderError(MsgConfigurationMissing)
	}

	layout := settings.Layout
	if layoutOverride != "" {
		if l, ok := model.ParseLayout(layoutOverride); ok {
			layout = l
		}
	}

	playlist, err := u.playlistRepo.GetPlaylist(ctx, settings)
	if err != nil {
		logger.GetLogger().WithField("playlistId", settings.PlaylistID).WithField("error", err).Warn("Playlist fetch failed")
		return u.renderer.RenderError(FetchErrorMessage(err))
	}

	items := playlist.VideoItems()
	if len(items) == 0 {
		return u.renderer.RenderError(MsgEmptyResult)
	}

	out, err := u.renderer.RenderPlaylist(layout, items)
	if err != nil {
		logger.GetLogger().WithField("layout", layout).WithField("error", err).Error("Playlist render failed")
		return u.renderer.RenderError(msgRenderFailed)
	}
	return out
}

func (u *PlaylistUseCase) RefreshCache(ctx context.Context) (*dto.RefreshResponse, error) {
	settings, err := u.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.IsConfigured() {
		return nil, model.ErrConfigurationMissing
	}
	key, err := u.playlistRepo.Invalidate(ctx, settings.PlaylistID, settings.MaxResults)
	if err != nil {
		return &dto.RefreshResponse{CacheKey: key}, fmt.Errorf("failed to clear playlist cache: %w", err)
	}
	return &dto.RefreshResponse{CacheKey: key, Cleared: true}, nil
}

// FetchErrorMessage turns a fetch failure into the message shown to visitors.
func FetchErrorMessage(err error) string {
	var fe *model.FetchError
	if errors.As(err, &fe) && fe.Message != "" {
		return msgFetchErrorPrefix + fe.Message
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return msgFetchErrorPrefix + urlErr.Err.Error()
	}
	return msgFetchErrorPrefix + err.Error()
}
