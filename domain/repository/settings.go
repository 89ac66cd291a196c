package repository

import (
	"context"

	"playlist-grid/domain/model"
)

// ISettings persists the single named settings record
type ISettings interface {
	// Load returns model.ErrSettingsNotFound when nothing was saved yet.
	Load(ctx context.Context) (model.Settings, error)
	Save(ctx context.Context, settings model.Settings) error
}
