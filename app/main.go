package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/pubfront/app/api"
	"github.com/lysyi3m/pubfront/app/blog"
	"github.com/lysyi3m/pubfront/app/cfg"
	"github.com/lysyi3m/pubfront/app/database"
	"github.com/lysyi3m/pubfront/app/site"
	"github.com/lysyi3m/pubfront/app/source"
	"github.com/lysyi3m/pubfront/app/tasks"
)

func main() {
	appConfig, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appConfig == nil {
		// Help was shown
		return
	}

	setupLogger(appConfig.Debug)

	slog.Info("Starting pubfront", "version", appConfig.Version, "timezone", appConfig.Timezone)

	siteConfig, err := site.Load(appConfig.SiteFile)
	if err != nil {
		slog.Error("Failed to load site configuration", "path", appConfig.SiteFile, "error", err)
		os.Exit(1)
	}
	slog.Info("Site configuration loaded", "title", siteConfig.Title, "order_options", len(siteConfig.OrderOptions))

	db, err := database.NewConnection(appConfig.DBPath)
	if err != nil {
		slog.Error("Failed to connect to database", "path", appConfig.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", appConfig.DBPath, "schema_version", version, "dirty", dirty)

	runRepo := database.NewLoadRunRepository(db)

	sorter := blog.NewSorter(blog.ParseLocale(appConfig.Locale))
	catalog := blog.NewCatalog(sorter)

	client := source.NewClient(
		source.WithEndpoints(appConfig.PublicationsURL, appConfig.AuthorsURL),
		source.WithUserAgent(appConfig.UserAgent),
		source.WithTimeout(time.Duration(appConfig.FetchTimeout)*time.Second),
		source.WithRateLimit(appConfig.RateLimit),
	)

	slog.Info("Starting background loader", "workers", appConfig.WorkerCount, "refresh_interval", appConfig.RefreshInterval)
	scheduler := tasks.NewScheduler(catalog, client, runRepo,
		time.Duration(appConfig.RefreshInterval)*time.Second, appConfig.WorkerCount)
	scheduler.Start()
	defer scheduler.Stop()

	handler := api.NewHandler(catalog, siteConfig, runRepo, appConfig.SidebarSize)
	server, err := api.NewServer(handler)
	if err != nil {
		slog.Error("Failed to initialize HTTP server", "error", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appConfig.Port, "base_url", appConfig.BaseUrl)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	// Scheduler and database are closed via defer
	slog.Info("Shutdown complete")
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
}
