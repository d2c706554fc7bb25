package main

import (
	"context"
	"log"

	"hopebridge_site/config"
	"hopebridge_site/handlers"
	"hopebridge_site/middleware"
	"hopebridge_site/services"
	"hopebridge_site/static"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// The service registry is fixed content; refuse to serve a broken one
	if err := services.ValidateContent(); err != nil {
		log.Fatalf("Invalid site content: %v", err)
	}

	// Assets and cache-busting versions
	assets := static.Assets(cfg.StaticDir)
	middleware.InitAssetVersions(assets)

	// Mount the page into the host document
	site, err := handlers.NewSite(cfg, assets, services.SystemClock{})
	if err != nil {
		log.Fatalf("Failed to mount page: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.SecurityHeaders())

	handlers.RegisterRoutes(e, site)

	// Development-only: re-hash and re-mount when assets on disk change
	if cfg.IsDevelopment() && cfg.StaticDir != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		err := middleware.WatchAssets(ctx, cfg.StaticDir, assets, func() {
			if err := site.Remount(); err != nil {
				log.Printf("[WARNING] Failed to remount page after asset change: %v", err)
			}
		})
		if err != nil {
			log.Printf("[WARNING] Asset watcher disabled: %v", err)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
