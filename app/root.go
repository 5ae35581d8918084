// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/projecthub/projecthub/internal/config"
	"github.com/projecthub/projecthub/internal/logger"
)

var (
	configPath string // Path to the configuration directory
	devMode    bool

	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "projecthub",
		Short: "projecthub manages companies, projects and who may act on them",
		Long: `projecthub is a JSON web service for companies and projects.
It stores roles, permissions and the authorizations granting them on resources,
and answers whether a user may perform an action on a resource.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			if cfg, err = config.ReadConfig(configPath); err != nil {
				return err
			}

			if devMode {
				cfg.DevMode = true
			}

			return logger.Init(cfg.Log)
		},
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./etc/", "Path to the configuration directory")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false, "Enable dev mode")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
