package main

import (
	"context"
	"flag"
	"log"

	"hopebridge_site/config"
	"hopebridge_site/handlers"
	"hopebridge_site/middleware"
	"hopebridge_site/services"
	"hopebridge_site/static"
)

func main() {
	cfg := config.Load()

	outDir := flag.String("out", cfg.ExportDir, "Directory to write the export to when R2 is not configured")
	baseURL := flag.String("base-url", cfg.AppURL, "Public URL the export will be served from")
	flag.Parse()

	cfg.ExportDir = *outDir
	cfg.AppURL = *baseURL
	// A static build is rendered once; nothing to compare against
	cfg.StrictRender = false

	if err := services.ValidateContent(); err != nil {
		log.Fatalf("Invalid site content: %v", err)
	}

	assets := static.Assets(cfg.StaticDir)
	middleware.InitAssetVersions(assets)

	site, err := handlers.NewSite(cfg, assets, services.SystemClock{})
	if err != nil {
		log.Fatalf("Failed to mount page: %v", err)
	}

	storage := services.NewStorage(cfg)
	manifest, err := services.ExportSite(context.Background(), storage, services.ExportOptions{
		BaseURL: cfg.AppURL,
		Render:  site.RenderPage,
		Assets:  assets,
		Clock:   site.Clock,
	})
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	for _, f := range manifest.Files {
		log.Printf("  %s (%s, %d bytes)", f.Key, f.ContentType, f.Size)
	}
	log.Printf("Build %s written", manifest.BuildID)
}
