package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/imobiliaria/portal-locacao/internal/apperrors"
	"github.com/imobiliaria/portal-locacao/internal/database"
)

// SystemService handles system-related operations
type SystemService struct {
	db         *sql.DB
	driver     string
	appVersion string
	features   map[string]bool
}

// VersionInfo describes the running build and its schema state.
type VersionInfo struct {
	AppVersion       string
	DbVersion        string
	Features         map[string]bool
	MigrationNeeded  bool
	MigrationMessage *string
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB, driver, appVersion string, features map[string]bool) *SystemService {
	return &SystemService{
		db:         db,
		driver:     driver,
		appVersion: appVersion,
		features:   features,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion reports the application version, the schema version and
// whether embedded migrations are still pending.
func (s *SystemService) CheckVersion(ctx context.Context) (VersionInfo, error) {
	version, pending, err := database.SchemaStatus(ctx, s.db, s.driver)
	if err != nil {
		return VersionInfo{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetVersionInfo, err)
	}

	info := VersionInfo{
		AppVersion:      s.appVersion,
		DbVersion:       fmt.Sprintf("%d", version),
		Features:        s.features,
		MigrationNeeded: pending,
	}
	if pending {
		msg := "database schema is behind the application; restart to apply migrations"
		info.MigrationMessage = &msg
	}
	return info, nil
}
