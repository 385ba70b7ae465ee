// @title Course Catalog API
// @version 1.0
// @description Backend for the course catalog platform: courses, instructors, categories, testimonials and enrollments.

// @host localhost:8080
// @BasePath /api

package main

import (
	"course_catalog_backend/internal/app"
	"course_catalog_backend/internal/config"
	"course_catalog_backend/pkg/configwatcher"
	"course_catalog_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// Follow config edits so the log level can be flipped without a
	// restart.
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.SetLevel(newCfg.Server.Mode)
		logger.Log.Info("Configuration reloaded")
	})

	application.Run()
}
