package main

import (
	"fmt"

	"github.com/Vickyvkz7/SIH2025/database"
	"github.com/Vickyvkz7/SIH2025/internal/config"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		viperConfig := config.NewViper()
		log := config.NewLogger(viperConfig)

		db, err := database.New(viperConfig, log)
		if err != nil {
			return err
		}
		defer database.Close(db, log)

		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("Migrations completed successfully")
		return nil
	},
}
