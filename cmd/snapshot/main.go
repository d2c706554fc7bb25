package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"hopebridge_site/config"
	"hopebridge_site/handlers"
	"hopebridge_site/middleware"
	"hopebridge_site/services"
	"hopebridge_site/static"

	"github.com/labstack/echo/v4"
)

func main() {
	cfg := config.Load()

	outPath := flag.String("out", cfg.SnapshotPath, "Where to write the PDF")
	pageSize := flag.String("size", "letter", "Paper size: letter, legal, A4")
	landscape := flag.Bool("landscape", false, "Print in landscape orientation")
	flag.Parse()

	assets := static.Assets(cfg.StaticDir)
	middleware.InitAssetVersions(assets)

	site, err := handlers.NewSite(cfg, assets, services.SystemClock{})
	if err != nil {
		log.Fatalf("Failed to mount page: %v", err)
	}
	// Print every section in its final state
	site.Settled = true

	e := echo.New()
	e.HideBanner = true
	handlers.RegisterRoutes(e, site)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}
	server := &http.Server{Handler: e}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[WARNING] Snapshot server stopped: %v", err)
		}
	}()

	options := services.DefaultPDFOptions()
	options.PageSize = *pageSize
	if *landscape {
		options.PageOrientation = "landscape"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	url := "http://" + listener.Addr().String() + "/"
	pdf, err := services.PrintPageToPDF(ctx, url, options, cfg.ChromePath)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = server.Shutdown(shutdownCtx)

	if err != nil {
		log.Fatalf("Snapshot failed: %v", err)
	}
	if err := os.WriteFile(*outPath, pdf, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", *outPath, err)
	}
	log.Printf("[INFO] Snapshot written to %s (%d bytes)", *outPath, len(pdf))
}
