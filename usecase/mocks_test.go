package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"playlist-grid/domain/model"
)

type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) Load(ctx context.Context) (model.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Settings), args.Error(1)
}

func (m *MockSettingsRepo) Save(ctx context.Context, settings model.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

type MockPlaylistRepo struct {
	mock.Mock
}

func (m *MockPlaylistRepo) GetPlaylist(ctx context.Context, settings model.Settings) (*model.Playlist, error) {
	args := m.Called(ctx, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepo) Invalidate(ctx context.Context, playlistID string, maxResults int) (string, error) {
	args := m.Called(ctx, playlistID, maxResults)
	return args.String(0), args.Error(1)
}
