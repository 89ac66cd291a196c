package persistence

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"time"

	"playlist-grid/domain/model"
	"playlist-grid/domain/repository"
	"playlist-grid/infrastructure/logger"
)

const (
	CacheKeyPrefix = "ytpg_videos_"
	CacheTTL       = time.Hour
)

// CacheKey is ytpg_videos_<md5(playlistID + maxResults)>, computed on the configured (raw) playlist value.
func CacheKey(playlistID string, maxResults int) string {
	sum := md5.Sum([]byte(playlistID + strconv.Itoa(maxResults)))
	return CacheKeyPrefix + hex.EncodeToString(sum[:])
}

// PlaylistRepository fronts the playlist API client with the transient cache
type PlaylistRepository struct {
	CacheRepo         repository.ITransientCache
	PlaylistAPIClient repository.IPlaylistClient
}

func NewPlaylistRepository(cache repository.ITransientCache, client repository.IPlaylistClient) *PlaylistRepository {
	return &PlaylistRepository{CacheRepo: cache, PlaylistAPIClient: client}
}

// GetPlaylist returns the cached payload when present, otherwise fetches it and caches successful results
// for CacheTTL. Cache failures degrade to a miss.
func (r *PlaylistRepository) GetPlaylist(ctx context.Context, settings model.Settings) (*model.Playlist, error) {
	key := CacheKey(settings.PlaylistID, settings.MaxResults)

	if r.CacheRepo != nil {
		var cached model.Playlist
		found, err := r.CacheRepo.Get(ctx, key, &cached)
		if err != nil {
			logger.GetLogger().WithField("cacheKey", key).WithField("error", err).Warn("Playlist cache read failed")
		} else if found {
			logger.GetLogger().WithField("cacheKey", key).Debug("Playlist cache hit")
			return &cached, nil
		}
	}

	playlist, err := r.PlaylistAPIClient.FetchPlaylistItems(ctx, settings.APIKey, settings.PlaylistID, settings.MaxResults)
	if err != nil {
		return nil, err
	}

	if r.CacheRepo != nil && playlist != nil {
		if err := r.CacheRepo.Set(ctx, key, playlist, CacheTTL); err != nil {
			logger.GetLogger().WithField("cacheKey", key).WithField("error", err).Warn("Playlist cache write failed")
		}
	}
	return playlist, nil
}

// Invalidate deletes the cache entry for the pair
func (r *PlaylistRepository) Invalidate(ctx context.Context, playlistID string, maxResults int) (string, error) {
	key := CacheKey(playlistID, maxResults)
	if r.CacheRepo == nil {
		return key, nil
	}
	if err := r.CacheRepo.Delete(ctx, key); err != nil {
		return key, err
	}
	logger.GetLogger().WithField("cacheKey", key).Info("Playlist cache invalidated")
	return key, nil
}
