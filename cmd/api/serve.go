package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vickyvkz7/SIH2025/database"
	"github.com/Vickyvkz7/SIH2025/internal/config"
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/repository"
	"github.com/Vickyvkz7/SIH2025/internal/entity"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/catalog"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/validate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	viperConfig := config.NewViper()

	log := config.NewLogger(viperConfig)
	db, err := database.New(viperConfig, log)
	if err != nil {
		return err
	}
	defer database.Close(db, log)

	validator := validate.NewValidator()
	api := config.NewAPI(viperConfig, log)

	if skip, _ := cmd.Flags().GetBool("skip-migrate"); !skip {
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("Migrations completed successfully")
	}

	collegesFile := viperConfig.GetString("data.colleges_file")
	if err := database.SeedColleges(db, collegesFile, log); err != nil {
		return err
	}
	if viperConfig.GetBool("data.demo_user") {
		if err := database.SeedDemoUser(db, log); err != nil {
			return err
		}
	}
	log.Info("Seeders completed successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if viperConfig.GetBool("data.watch") {
		go watchColleges(ctx, db, collegesFile, log)
	}

	config.Bootstrap(&config.BootstrapConfig{
		Ctx:       ctx,
		Config:    viperConfig,
		Log:       log,
		Api:       api,
		Validator: validator,
		DB:        db,
	})

	listenAddr := fmt.Sprintf(":%d", viperConfig.GetInt("api.port"))

	serveErr := make(chan error, 1)
	go func() {
		log.WithField("addr", listenAddr).Info("API server starting")
		serveErr <- api.Listen(listenAddr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start API server: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := api.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("API shutdown error: %v", err)
	}
	return nil
}

func watchColleges(ctx context.Context, db *gorm.DB, path string, log *logrus.Logger) {
	colleges := repository.NewCollegeRepository(db)
	watcher, err := catalog.NewWatcher(path, log, func(rows []entity.College) error {
		return colleges.Upsert(nil, rows)
	})
	if err != nil {
		log.WithError(err).Warn("college catalog watcher disabled")
		return
	}

	log.WithField("path", path).Info("watching college catalog")
	if err := watcher.Run(ctx); err != nil {
		log.WithError(err).Warn("college catalog watcher stopped")
	}
}
