/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"

	"github.com/mautops/filing-gin/internal/database"
	"github.com/mautops/filing-gin/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot the SQLite database",
	Long: `Create a consistent snapshot of the SQLite database in the backup directory.
Use --list to show existing snapshots instead. PostgreSQL deployments
should use pg_dump.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect database: %w", err)
		}
		defer database.Close(db)

		backupService := service.NewBackupService(db, cfg.Backup.Dir)
		out := cmd.OutOrStdout()

		if list, _ := cmd.Flags().GetBool("list"); list {
			backups, err := backupService.ListBackups(cmd.Context())
			if err != nil {
				return err
			}
			for _, b := range backups {
				fmt.Fprintf(out, "%s\t%d\t%s\n", b.Filename, b.Size, b.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		}

		path, err := backupService.CreateBackup(cmd.Context())
		if err != nil {
			return err
		}
		logrus.WithField("path", path).Info("backup created")
		fmt.Fprintln(out, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)

	backupCmd.Flags().Bool("list", false, "List existing backups")
}
