// main.go
package main

import (
	"context"
	"log"

	"cinebook/cmd"
	"cinebook/internal/data/repository"
	"cinebook/internal/wire"
	"cinebook/pkg/database"
	"cinebook/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database when configured, otherwise run fully in memory
	var db database.PgxIface
	if config.UseDatabase() {
		db, err = database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := database.Migrate(context.Background(), db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		logger.Info("Database connected successfully")
	} else {
		logger.Info("No database configured, using in-memory stores")
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Seed demo catalog and accounts
	if config.Seed.DemoData {
		if err := repository.SeedDemoData(context.Background(), repos, logger); err != nil {
			logger.Fatal("Failed to seed demo data", zap.Error(err))
		}
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, logger)
}
