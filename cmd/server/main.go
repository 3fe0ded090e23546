// Package main is the entry point for the colormap server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/johnkit/colorkit/internal/api"
	"github.com/johnkit/colorkit/internal/cache"
	"github.com/johnkit/colorkit/internal/config"
	"github.com/johnkit/colorkit/internal/render"
	"github.com/johnkit/colorkit/internal/service"
	"github.com/johnkit/colorkit/pkg/colormap"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config/server.yaml", "Path to configuration file")
	envFile := flag.String("env", ".env", "Optional dotenv file with COLORKIT_* overrides")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadWithEnv(*configPath, *envFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting colorkit server on port %d", cfg.Server.Port)

	ctx := context.Background()

	cacheManager, err := cache.NewManager(cache.Config{
		ColorbarCacheSizeMB: cfg.Cache.ColorbarSizeMB,
		ColorbarTTL:         time.Duration(cfg.Cache.ColorbarTTLMinutes) * time.Minute,
		QueryCacheSize:      cfg.Cache.QueryCacheSize,
	})
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	defer cacheManager.Close()

	colorbarRenderer := render.NewColorbarRenderer(render.Config{
		Width:  cfg.Render.ColorbarWidth,
		Height: cfg.Render.ColorbarHeight,
	})

	if !colormap.DefaultRegistry.Has(cfg.Colormap.DefaultSeries) {
		log.Printf("Default series %q is not registered, falling back to %q",
			cfg.Colormap.DefaultSeries, colormap.SeriesNames()[0])
	}

	colormapService := service.NewColormapService(service.ColormapServiceConfig{
		Registry:      colormap.DefaultRegistry,
		Cache:         cacheManager,
		Renderer:      colorbarRenderer,
		DefaultSeries: cfg.Colormap.DefaultSeries,
		Strict:        cfg.Colormap.Strict,
	})

	log.Printf("Series: %v, default: %s, strict: %v",
		colormapService.SeriesNames(), colormapService.DefaultSeries(), cfg.Colormap.Strict)

	// Set up HTTP router
	router := api.NewRouter(api.RouterConfig{
		Service:     colormapService,
		Cache:       cacheManager,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on http://localhost:%d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
