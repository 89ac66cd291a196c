package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"playlist-grid/domain/dto"
	"playlist-grid/domain/model"
	"playlist-grid/domain/repository"
	"playlist-grid/infrastructure/logger"
	"playlist-grid/infrastructure/utils"
)

// ISettingsUseCase reads and writes the admin settings
type ISettingsUseCase interface {
	// GetSettings always returns usable, normalized settings. The error is informational:
	// on a store failure the configured seed is returned alongside it.
	GetSettings(ctx context.Context) (model.Settings, error)
	SaveSettings(ctx context.Context, req *dto.SettingsFormRequest) (model.Settings, error)
}

type SettingsUseCase struct {
	settingsRepo repository.ISettings
	seed         model.Settings
}

// NewSettingsUseCase builds the use case. seed is served until the first save.
func NewSettingsUseCase(settingsRepo repository.ISettings, seed model.Settings) ISettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo, seed: seed.Normalize()}
}

func (u *SettingsUseCase) GetSettings(ctx context.Context) (model.Settings, error) {
	settings, err := u.settingsRepo.Load(ctx)
	if err != nil {
		if errors.Is(err, model.ErrSettingsNotFound) {
			return u.seed, nil
		}
		logger.GetLogger().WithField("error", err).Error("Failed to load settings, using configured defaults")
		return u.seed, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings.Normalize(), nil
}

func (u *SettingsUseCase) SaveSettings(ctx context.Context, req *dto.SettingsFormRequest) (model.Settings, error) {
	if req == nil {
		return model.Settings{}, fmt.Errorf("settings request is required")
	}
	if req.MaxResults < model.MinMaxResults || req.MaxResults > model.MaxMaxResults {
		return model.Settings{}, fmt.Errorf("number of videos must be between %d and %d", model.MinMaxResults, model.MaxMaxResults)
	}
	layout := model.LayoutGrid
	if req.Layout != "" {
		l, ok := model.ParseLayout(req.Layout)
		if !ok {
			return model.Settings{}, fmt.Errorf("invalid layout: %s", req.Layout)
		}
		layout = l
	}

	settings := model.Settings{
		APIKey:     req.APIKey,
		PlaylistID: req.PlaylistID,
		MaxResults: req.MaxResults,
		CustomCSS:  req.CustomCSS,
		Layout:     layout,
	}.Normalize()
	settings.UpdatedAt = utils.GetCurrentTime()

	if err := u.settingsRepo.Save(ctx, settings); err != nil {
		return model.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	logger.GetLogger().WithField("playlistId", settings.PlaylistID).WithField("maxResults", settings.MaxResults).Info("Settings saved")
	return settings, nil
}

// ToSettingsResponse converts settings into the JSON view with the API key masked
func ToSettingsResponse(s model.Settings) dto.SettingsResponse {
	return dto.SettingsResponse{
		APIKey:     MaskSecret(s.APIKey),
		PlaylistID: s.PlaylistID,
		MaxResults: s.MaxResults,
		CustomCSS:  s.CustomCSS,
		Layout:     string(s.Layout),
		Configured: s.IsConfigured(),
	}
}

// MaskSecret keeps the last four characters of s.
func MaskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
