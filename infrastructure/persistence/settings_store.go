package persistence

import (
	"database/sql"
	"fmt"
	"strings"

	"playlist-grid/domain/repository"
	"playlist-grid/infrastructure/logger"
)

const (
	VendorPostgres = "postgres"
	VendorMSSQL    = "mssql"
	VendorMemory   = "memory"
)

// OpenSettingsStore connects the settings repository for vendor and ensures its table exists.
// The returned *sql.DB is nil for the memory store; callers close it on shutdown.
func OpenSettingsStore(vendor string) (repository.ISettings, *sql.DB, error) {
	switch strings.ToLower(vendor) {
	case VendorPostgres, "postgresql", "psql":
		db, err := NewPostgreSQLDB()
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := EnsureSettingsSchema(db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ensure settings schema: %w", err)
		}
		logger.GetLogger().Info("Settings stored in PostgreSQL")
		return NewSettingsRepository(db), db, nil
	case VendorMSSQL, "sqlserver":
		db, err := NewMSSQLDB()
		if err != nil {
			return nil, nil, fmt.Errorf("connect mssql: %w", err)
		}
		if err := EnsureSettingsSchemaMSSQL(db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ensure settings schema: %w", err)
		}
		logger.GetLogger().Info("Settings stored in MSSQL")
		return NewSettingsRepositoryMSSQL(db), db, nil
	case VendorMemory, "":
		logger.GetLogger().Info("Settings kept in memory; saved changes are lost on restart")
		return NewMemorySettingsRepository(), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown database vendor %q", vendor)
}
