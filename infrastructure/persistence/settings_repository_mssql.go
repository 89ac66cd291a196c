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

// EnsureSettingsSchemaMSSQL creates the options table on MSSQL if not exists
func EnsureSettingsSchemaMSSQL(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("db is nil")
	}
	ddl := `IF NOT EXISTS (SELECT * FROM sys.objects WHERE object_id = OBJECT_ID(N'dbo.ytpg_options') AND type in (N'U'))
BEGIN
    CREATE TABLE dbo.ytpg_options (
        name NVARCHAR(191) NOT NULL PRIMARY KEY,
        value NVARCHAR(MAX) NOT NULL,
        updated_at DATETIMEOFFSET NOT NULL
    );
END`
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create ytpg_options table (mssql): %w", err)
	}
	return nil
}

// SettingsRepositoryMSSQL implements ISettings on MSSQL
type SettingsRepositoryMSSQL struct {
	db   *sql.DB
	name string
}

func NewSettingsRepositoryMSSQL(db *sql.DB) repository.ISettings {
	return &SettingsRepositoryMSSQL{db: db, name: model.SettingsName}
}

func (r *SettingsRepositoryMSSQL) Load(ctx context.Context) (model.Settings, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM dbo.ytpg_options WHERE name=@p1`, r.name)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Settings{}, model.ErrSettingsNotFound
		}
		return model.Settings{}, err
	}
	var s model.Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return model.Settings{}, fmt.Errorf("decode %s: %w", r.name, err)
	}
	return s, nil
}

func (r *SettingsRepositoryMSSQL) Save(ctx context.Context, settings model.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	q := `MERGE dbo.ytpg_options AS target
USING (SELECT @p1 AS name) AS src
ON (target.name = src.name)
WHEN MATCHED THEN UPDATE SET value=@p2, updated_at=@p3
WHEN NOT MATCHED THEN INSERT (name, value, updated_at)
VALUES (@p1, @p2, @p3);`
	_, err = r.db.ExecContext(ctx, q, r.name, string(raw), time.Now().UTC())
	return err
}
