// Package db opens the configured database and migrates the schema.
package db

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/projecthub/projecthub/internal/config"
	"github.com/projecthub/projecthub/internal/db/dsn"
	"github.com/projecthub/projecthub/internal/db/models"
	gormlog "github.com/projecthub/projecthub/internal/logger/adapter/gorm"
)

const slowQueryThreshold = 200 * time.Millisecond

// Open connects gorm with the driver selected by cfg.DB.GormEngine.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case config.EnginePostgres:
		dialector = postgres.Open(dsn.Create(cfg))
	case config.EngineSQLite:
		dialector = sqlite.Open(dsn.Create(cfg))
	case config.EngineMySQL, "":
		dialector = gormmysql.Open(dsn.Create(cfg))
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnsupportedDBEngine, cfg.DB.GormEngine)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlog.New(cfg.DB.Debug, slowQueryThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates every table, including the explicit join tables.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Role{}, "Permissions", &models.RolePermission{}); err != nil {
		return fmt.Errorf("failed to setup role permissions join table: %w", err)
	}

	if err := db.SetupJoinTable(&models.Company{}, "Officials", &models.CompanyOfficial{}); err != nil {
		return fmt.Errorf("failed to setup company officials join table: %w", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}
