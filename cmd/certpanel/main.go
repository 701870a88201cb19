package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/ericfisherdev/certpanel/internal/adapter/driven/catalogfile"
	sqliteadapter "github.com/ericfisherdev/certpanel/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/certpanel/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/certpanel/internal/adapter/driving/web"
	"github.com/ericfisherdev/certpanel/internal/application"
	"github.com/ericfisherdev/certpanel/internal/config"
	"github.com/ericfisherdev/certpanel/internal/domain/port/driven"
	"github.com/ericfisherdev/certpanel/internal/metrics"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on malformed env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"catalog_path", cfg.CatalogPath,
		"db_path", cfg.DBPath,
		"session_ttl", cfg.SessionTTL,
		"max_sessions", cfg.MaxSessions,
		"base_delay", cfg.Animation.BaseDelay,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open the catalog source and load it once.
	source, closeSource, err := openCatalogSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	catalog, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	slog.Info("catalog loaded", "credentials", len(catalog.Records))

	// 4. Wire the core.
	store := application.NewRecordStore(catalog.Records)
	sequencer := application.NewPresentationSequencer(cfg.Animation)
	registry := application.NewSessionRegistry(store, sequencer, cfg.SessionTTL, cfg.MaxSessions)
	m := metrics.New(prometheus.DefaultRegisterer)

	// 5. Evict idle browser sessions in the background.
	go registry.StartSweeper(ctx, sweepInterval(cfg.SessionTTL), m.SetActiveSessions)

	// 6. Register JSON API, metrics and web routes.
	mux := http.NewServeMux()
	apiHandler := httphandler.NewHandler(store, sequencer, slog.Default())
	httphandler.RegisterAPIRoutes(mux, apiHandler)
	mux.Handle("GET /metrics", promhttp.Handler())

	webHandler := webhandler.NewHandler(registry, store, catalog.Page, cfg.SiteURL, m, slog.Default())
	webhandler.RegisterRoutes(mux, webHandler)

	// Apply middleware.
	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
			stop()
		}
	}()

	// 7. Log startup complete.
	slog.Info("certpanel started", "listen_addr", cfg.ListenAddr)

	// 8. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	// 9. Graceful shutdown with 10s timeout to drain in-flight requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}

// openCatalogSource selects the SQLite catalog when a database path is
// configured and the YAML catalog otherwise. The returned func releases any
// resources the source holds.
func openCatalogSource(ctx context.Context, cfg *config.Config) (driven.CatalogSource, func(), error) {
	if !cfg.UsesSQLiteCatalog() {
		return catalogfile.New(cfg.CatalogPath, cfg.SiteURL, slog.Default()), func() {}, nil
	}

	db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}
	slog.Info("database opened", "path", db.Path())

	version, err := sqliteadapter.RunMigrations(db.Writer)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	slog.Info("migrations complete", "version", version)

	return sqliteadapter.NewCatalogRepo(db, cfg.SiteURL, slog.Default()), closeDB, nil
}

// sweepInterval checks for idle sessions a few times per TTL, but no more
// than once a minute.
func sweepInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 0
	}
	return max(ttl/4, time.Minute)
}
