package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/projecthub/projecthub/internal/daemon"
	"github.com/projecthub/projecthub/internal/db"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(migrateCmd, seedCmd, configCmd)
}

var (
	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(_ *cobra.Command, _ []string) error {
			gdb, err := db.Open(&cfg)
			if err != nil {
				return err
			}

			if err = db.Migrate(gdb); err != nil {
				return err
			}

			log.Info().Str("engine", cfg.DB.GormEngine).Msg("database migrated")

			return nil
		},
	}

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Migrate the database and create the admin account and default permissions",
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := daemon.Prepare(&cfg); err != nil {
				return err
			}

			log.Info().Msg("database seeded")

			return nil
		},
	}
)
