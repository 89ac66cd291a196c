package persistence

import (
	"context"
	"sync"

	"playlist-grid/domain/model"
	"playlist-grid/domain/repository"
)

// MemorySettingsRepository is used when no database is configured. Saved settings live until restart.
type MemorySettingsRepository struct {
	mu       sync.RWMutex
	settings *model.Settings
}

func NewMemorySettingsRepository() repository.ISettings {
	return &MemorySettingsRepository{}
}

func (r *MemorySettingsRepository) Load(_ context.Context) (model.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.settings == nil {
		return model.Settings{}, model.ErrSettingsNotFound
	}
	return *r.settings, nil
}

func (r *MemorySettingsRepository) Save(_ context.Context, settings model.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = &settings
	return nil
}
