// main.go
package main

import (
	"log"

	"movies-api/cmd"
	"movies-api/internal/data/repository"
	"movies-api/internal/wire"
	"movies-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.Log, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("log_path", config.Log.Path),
		zap.Strings("allowed_origins", config.CORS.AllowedOrigins),
	)

	// Seed the in-memory store
	movies, err := repository.SeedMovies(config.Seed.Path)
	if err != nil {
		logger.Fatal("Failed to load seed movies", zap.Error(err), zap.String("path", config.Seed.Path))
	}

	logger.Info("Seed movies loaded", zap.Int("count", len(movies)))

	repos := repository.NewRepository(movies, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
