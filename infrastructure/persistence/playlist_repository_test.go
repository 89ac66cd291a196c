package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"playlist-grid/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPlaylistClient struct {
	mock.Mock
}

func (m *MockPlaylistClient) FetchPlaylistItems(ctx context.Context, apiKey, playlistID string, maxResults int) (*model.Playlist, error) {
	args := m.Called(ctx, apiKey, playlistID, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}

type MockTransientCache struct {
	mock.Mock
}

func (m *MockTransientCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransientCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockTransientCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func configured() model.Settings {
	return model.Settings{APIKey: "key", PlaylistID: "PLabc", MaxResults: 6, Layout: model.LayoutGrid}
}

func TestCacheKey(t *testing.T) {
	// md5("PLabc6")
	assert.Equal(t, "ytpg_videos_0cb5ecb86cd8b8473dd7657e0be460da", CacheKey("PLabc", 6))
	assert.Equal(t, CacheKey("PLabc", 6), CacheKey("PLabc", 6))
	assert.NotEqual(t, CacheKey("PLabc", 6), CacheKey("PLabc", 7))
	assert.NotEqual(t, CacheKey("PLabc", 6), CacheKey("PLabd", 6))
	assert.Len(t, CacheKey("PLabc", 6), len(CacheKeyPrefix)+32)
}

func TestPlaylistRepository_CacheHit(t *testing.T) {
	client := new(MockPlaylistClient)
	cache := new(MockTransientCache)
	key := CacheKey("PLabc", 6)

	cache.On("Get", mock.Anything, key, mock.AnythingOfType("*model.Playlist")).
		Run(func(args mock.Arguments) {
			dest := args.Get(2).(*model.Playlist)
			dest.PlaylistID = "PLabc"
			dest.Items = []model.PlaylistItem{{VideoID: "cached"}}
		}).
		Return(true, nil).
		Once()

	repo := NewPlaylistRepository(cache, client)
	playlist, err := repo.GetPlaylist(context.Background(), configured())
	require.NoError(t, err)
	require.Len(t, playlist.Items, 1)
	assert.Equal(t, "cached", playlist.Items[0].VideoID)

	client.AssertNotCalled(t, "FetchPlaylistItems", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestPlaylistRepository_CacheMissStoresResult(t *testing.T) {
	client := new(MockPlaylistClient)
	cache := new(MockTransientCache)
	key := CacheKey("PLabc", 6)
	fetched := &model.Playlist{PlaylistID: "PLabc", Items: []model.PlaylistItem{{VideoID: "fresh"}}}

	cache.On("Get", mock.Anything, key, mock.Anything).Return(false, nil).Once()
	client.On("FetchPlaylistItems", mock.Anything, "key", "PLabc", 6).Return(fetched, nil).Once()
	cache.On("Set", mock.Anything, key, fetched, time.Hour).Return(nil).Once()

	playlist, err := NewPlaylistRepository(cache, client).GetPlaylist(context.Background(), configured())
	require.NoError(t, err)
	assert.Same(t, fetched, playlist)
	client.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestPlaylistRepository_FetchErrorIsNotCached(t *testing.T) {
	client := new(MockPlaylistClient)
	cache := new(MockTransientCache)
	fetchErr := &model.FetchError{Kind: model.ErrProvider, PlaylistID: "PLabc", Message: "quota exceeded"}

	cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()
	client.On("FetchPlaylistItems", mock.Anything, "key", "PLabc", 6).Return(nil, fetchErr).Once()

	playlist, err := NewPlaylistRepository(cache, client).GetPlaylist(context.Background(), configured())
	assert.Nil(t, playlist)
	assert.True(t, errors.Is(err, model.ErrProvider))
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaylistRepository_CacheReadFailureFallsThrough(t *testing.T) {
	client := new(MockPlaylistClient)
	cache := new(MockTransientCache)
	fetched := &model.Playlist{PlaylistID: "PLabc"}

	cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("connection refused")).Once()
	client.On("FetchPlaylistItems", mock.Anything, "key", "PLabc", 6).Return(fetched, nil).Once()
	cache.On("Set", mock.Anything, mock.Anything, fetched, CacheTTL).Return(errors.New("connection refused")).Once()

	playlist, err := NewPlaylistRepository(cache, client).GetPlaylist(context.Background(), configured())
	require.NoError(t, err)
	assert.Same(t, fetched, playlist)
	cache.AssertExpectations(t)
}

func TestPlaylistRepository_WithoutCache(t *testing.T) {
	client := new(MockPlaylistClient)
	fetched := &model.Playlist{PlaylistID: "PLabc"}
	client.On("FetchPlaylistItems", mock.Anything, "key", "PLabc", 6).Return(fetched, nil).Twice()

	repo := NewPlaylistRepository(nil, client)
	_, err := repo.GetPlaylist(context.Background(), configured())
	require.NoError(t, err)
	_, err = repo.GetPlaylist(context.Background(), configured())
	require.NoError(t, err)
	client.AssertExpectations(t)

	key, err := repo.Invalidate(context.Background(), "PLabc", 6)
	require.NoError(t, err)
	assert.Equal(t, CacheKey("PLabc", 6), key)
}

func TestPlaylistRepository_Invalidate(t *testing.T) {
	cache := new(MockTransientCache)
	key := CacheKey("PLabc", 6)
	cache.On("Delete", mock.Anything, key).Return(nil).Once()

	got, err := NewPlaylistRepository(cache, new(MockPlaylistClient)).Invalidate(context.Background(), "PLabc", 6)
	require.NoError(t, err)
	assert.Equal(t, key, got)
	cache.AssertExpectations(t)
}
