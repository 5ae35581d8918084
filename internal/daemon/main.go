// Package daemon wires configuration, database and web service together.
package daemon

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/projecthub/projecthub/internal/config"
	"github.com/projecthub/projecthub/internal/db"
	"github.com/projecthub/projecthub/internal/web"
)

// ErrConfigNil is returned when the daemon is built without configuration.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// Start runs the web service until a termination signal stopped it, then closes the database.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	log.Info().Str("title", d.cfg.Title).Str("engine", d.cfg.DB.GormEngine).Msg("starting")

	if err := d.webService.Start(); err != nil {
		return err
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// New opens and migrates the database, seeds an empty installation and builds the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	gdb, err := Prepare(cfg)
	if err != nil {
		return nil, err
	}

	return &Daemon{
		cfg:        cfg,
		db:         gdb,
		webService: web.New(cfg, gdb),
	}, nil
}

// Prepare opens the database, migrates the schema and seeds it.
func Prepare(cfg *config.Config) (*gorm.DB, error) {
	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(gdb); err != nil {
		return nil, err
	}

	if err = Seed(cfg, gdb); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	return gdb, nil
}
