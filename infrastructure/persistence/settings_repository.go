package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"playlist-grid/domain/model"
	"playlist-grid/domain/repository"
)

// EnsureSettingsSchema creates the named options table if not exists
func EnsureSettingsSchema(db *sql.DB) error {
	ddl := `CREATE TABLE IF NOT EXISTS ytpg_options (
        name TEXT PRIMARY KEY,
        value JSONB NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL
    )`
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create ytpg_options table: %w", err)
	}
	return nil
}

// SettingsRepository keeps the settings record as one JSONB row keyed by its name
type SettingsRepository struct {
	db   *sql.DB
	name string
}

func NewSettingsRepository(db *sql.DB) repository.ISettings {
	return &SettingsRepository{db: db, name: model.SettingsName}
}

func (r *SettingsRepository) Load(ctx context.Context) (model.Settings, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM ytpg_options WHERE name=$1`, r.name)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Settings{}, model.ErrSettingsNotFound
		}
		return model.Settings{}, err
	}
	var s model.Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return model.Settings{}, fmt.Errorf("decode %s: %w", r.name, err)
	}
	return s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings model.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	q := `INSERT INTO ytpg_options(name, value, updated_at)
          VALUES ($1,$2,$3)
          ON CONFLICT (name) DO UPDATE SET value=EXCLUDED.value, updated_at=EXCLUDED.updated_at`
	_, err = r.db.ExecContext(ctx, q, r.name, raw, time.Now().UTC())
	return err
}
