package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"playlist-grid/domain/model"
	"playlist-grid/domain/repository"
	"playlist-grid/infrastructure/logger"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	DefaultEndpoint = "https://www.googleapis.com/"
	DefaultTimeout  = 15 * time.Second
)

// Config represents the playlist client configuration
type Config struct {
	// Endpoint is the API root; requests go to <Endpoint>youtube/v3/playlistItems.
	Endpoint string
	Timeout  time.Duration
	// HTTPClient overrides the default client built from Timeout.
	HTTPClient *http.Client
}

// Client fetches playlist items in API key mode
type Client struct {
	service *youtube.Service
}

// NewPlaylistClient creates a new playlist client. The API key is supplied per call because it lives in
// the settings record and may change between requests.
func NewPlaylistClient(ctx context.Context, config *Config) (repository.IPlaylistClient, error) {
	if config == nil {
		config = &Config{}
	}
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	service, err := youtube.NewService(ctx,
		option.WithHTTPClient(httpClient),
		option.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{service: service}, nil
}

// FetchPlaylistItems issues one playlistItems.list call with part=snippet
func (c *Client) FetchPlaylistItems(ctx context.Context, apiKey, playlistID string, maxResults int) (*model.Playlist, error) {
	id := ExtractPlaylistID(playlistID)
	maxResults = model.ClampMaxResults(maxResults)

	call := c.service.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(id).
		MaxResults(int64(maxResults)).
		Context(ctx)

	response, err := call.Do(googleapi.QueryParameter("key", apiKey))
	if err != nil {
		fetchErr := classifyError(id, err)
		logger.GetLogger().
			WithField("playlistId", id).
			WithField("maxResults", maxResults).
			WithField("error", fetchErr).
			Warn("Playlist fetch failed")
		return nil, fetchErr
	}

	playlist := &model.Playlist{
		PlaylistID: id,
		ETag:       response.Etag,
		Items:      make([]model.PlaylistItem, 0, len(response.Items)),
		FetchedAt:  time.Now().UTC(),
	}
	if response.PageInfo != nil {
		playlist.TotalResults = response.PageInfo.TotalResults
	}
	for _, item := range response.Items {
		if item == nil || item.Snippet == nil {
			continue
		}
		playlist.Items = append(playlist.Items, convertToPlaylistItem(item))
	}

	logger.GetLogger().
		WithField("playlistId", id).
		WithField("items", len(playlist.Items)).
		Debug("Playlist fetched")
	return playlist, nil
}

// classifyError separates provider-reported errors from transport failures
func classifyError(playlistID string, err error) *model.FetchError {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = http.StatusText(apiErr.Code)
		}
		return &model.FetchError{
			Kind:       model.ErrProvider,
			PlaylistID: playlistID,
			StatusCode: apiErr.Code,
			Message:    msg,
			Err:        err,
		}
	}
	// *url.Error text carries the request URL, including the key parameter
	cause := err
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		cause = urlErr.Err
	}
	return &model.FetchError{
		Kind:       model.ErrTransport,
		PlaylistID: playlistID,
		Message:    cause.Error(),
		Err:        cause,
	}
}

// convertToPlaylistItem converts a YouTube API playlist item to our model
func convertToPlaylistItem(item *youtube.PlaylistItem) model.PlaylistItem {
	snippet := item.Snippet
	out := model.PlaylistItem{
		ID:          item.Id,
		Title:       snippet.Title,
		Description: snippet.Description,
		Position:    snippet.Position,
		PublishedAt: snippet.PublishedAt,
	}
	if snippet.ResourceId != nil {
		out.VideoID = snippet.ResourceId.VideoId
	}
	if t := snippet.Thumbnails; t != nil {
		out.Thumbnails.Default = convertThumbnail(t.Default)
		out.Thumbnails.Medium = convertThumbnail(t.Medium)
		out.Thumbnails.High = convertThumbnail(t.High)
	}
	return out
}

func convertThumbnail(t *youtube.Thumbnail) model.Thumbnail {
	if t == nil {
		return model.Thumbnail{}
	}
	return model.Thumbnail{URL: t.Url, Width: int(t.Width), Height: int(t.Height)}
}
