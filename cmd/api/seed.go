package main

import (
	"github.com/Vickyvkz7/SIH2025/database"
	"github.com/Vickyvkz7/SIH2025/internal/config"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the college catalog and the demo student",
	RunE: func(cmd *cobra.Command, args []string) error {
		viperConfig := config.NewViper()
		log := config.NewLogger(viperConfig)

		db, err := database.New(viperConfig, log)
		if err != nil {
			return err
		}
		defer database.Close(db, log)

		file, _ := cmd.Flags().GetString("file")
		if file == "" {
			file = viperConfig.GetString("data.colleges_file")
		}
		if err := database.SeedColleges(db, file, log); err != nil {
			return err
		}

		if skipDemo, _ := cmd.Flags().GetBool("no-demo-user"); !skipDemo {
			if err := database.SeedDemoUser(db, log); err != nil {
				return err
			}
		}
		log.Info("Seeders completed successfully")
		return nil
	},
}

func init() {
	seedCmd.Flags().String("file", "", "College catalog JSON (defaults to data.colleges_file)")
	seedCmd.Flags().Bool("no-demo-user", false, "Skip the demo student account")
}
