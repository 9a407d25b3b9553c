package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"opscalendar/internal/cache"
	"opscalendar/internal/config"
	"opscalendar/internal/dataset"
	"opscalendar/internal/events"
	"opscalendar/internal/logging"
	"opscalendar/internal/sheets"
	"opscalendar/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"addr", cfg.Server.Addr(),
		"sheets_backend", cfg.Sheets.Backend,
		"cache_ttl", cfg.Cache.TTL,
		"auth_enabled", cfg.Auth.Enabled,
	)

	ctx := context.Background()

	source, err := newSource(ctx, cfg)
	if err != nil {
		slog.Error("failed to create sheet source", "error", err)
		os.Exit(1)
	}

	store, cleanup, err := newCacheStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to create cache store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	repo := dataset.NewRepository(source, store, cfg.Cache.Key, cfg.Cache.TTL)
	service := events.NewService(repo)
	server := web.NewServer(service, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}

// newSource builds the configured backing tabular store.
func newSource(ctx context.Context, cfg *config.Config) (sheets.Source, error) {
	if strings.EqualFold(cfg.Sheets.Backend, "excel") {
		slog.Info("using excel workbook source", "path", cfg.Sheets.WorkbookPath)
		return sheets.NewExcelSource(cfg.Sheets.WorkbookPath), nil
	}
	slog.Info("using google sheets source", "spreadsheet_id", cfg.Sheets.SpreadsheetID)
	return sheets.NewGoogleSource(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.CredentialsFile)
}

// newCacheStore builds the snapshot cache: Postgres when a database is
// configured, otherwise in-process.
func newCacheStore(ctx context.Context, cfg *config.Config) (cache.Store, func(), error) {
	if cfg.Cache.DatabaseURL == "" {
		slog.Info("no cache database configured, using in-process cache")
		return cache.NewMemoryStore(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.Cache.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	store, err := cache.NewPostgresStore(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	slog.Info("using postgres snapshot cache")
	return store, pool.Close, nil
}
