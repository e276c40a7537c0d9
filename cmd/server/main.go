package main

import (
	"github.com/balbalm/feed-server/internal/router"
	"github.com/balbalm/feed-server/pkg/config"
	"github.com/balbalm/feed-server/pkg/logger"
	"github.com/balbalm/feed-server/pkg/storage"
	"github.com/balbalm/feed-server/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.Env, cfg.LogLevel)

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Image storage
	imageStore, err := storage.NewS3ImageStore(cfg.AWSRegion, cfg.S3Bucket)
	if err != nil {
		logger.Log.Fatalf("Failed to initialize image store: %v", err)
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db, imageStore, cfg); err != nil {
		logger.Log.Fatalf("Failed to set up routes: %v", err)
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
