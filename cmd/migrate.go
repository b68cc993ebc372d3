/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"

	"github.com/mautops/filing-gin/internal/database"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Run database migrations to create or update database schema.
This command will:
- Create the applications table if it doesn't exist
- Add new columns if needed
- Create the status/apply_time index used by list queries

The command uses the database configuration from the config file or environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		entry := logrus.WithField("driver", cfg.Database.Driver)
		if cfg.Database.Driver == "sqlite" {
			entry = entry.WithField("path", cfg.Database.Path)
		} else {
			entry = entry.WithFields(logrus.Fields{
				"host":   cfg.Database.Host,
				"port":   cfg.Database.Port,
				"dbname": cfg.Database.DBName,
			})
		}
		entry.Info("connecting to database")

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect database: %w", err)
		}
		defer database.Close(db)

		entry.Info("running database migrations")
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		entry.Info("database migrations completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
