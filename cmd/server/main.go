package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/imobiliaria/portal-locacao/internal/api"
	"github.com/imobiliaria/portal-locacao/internal/backend"
	"github.com/imobiliaria/portal-locacao/internal/config"
	"github.com/imobiliaria/portal-locacao/internal/database"
	"github.com/imobiliaria/portal-locacao/internal/directory"
	"github.com/imobiliaria/portal-locacao/internal/kvstore"
	"github.com/imobiliaria/portal-locacao/internal/logging"
	"github.com/imobiliaria/portal-locacao/internal/metrics"
	"github.com/imobiliaria/portal-locacao/internal/render"
	"github.com/imobiliaria/portal-locacao/internal/repository"
	"github.com/imobiliaria/portal-locacao/internal/scheduler"
	"github.com/imobiliaria/portal-locacao/internal/search"
	"github.com/imobiliaria/portal-locacao/internal/service"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// jobTimeout bounds a single scheduled job run.
const jobTimeout = 2 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck // nothing to do if the final flush fails
	zap.ReplaceGlobals(logger)

	metrics.Init()

	// Open database connection
	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	schemaVersion, err := database.Migrate(context.Background(), db, cfg.Database.Driver)
	if err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	logger.Info("connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.Int64("schema_version", schemaVersion))

	// Per-user storage
	var store kvstore.Store = repository.NewKVRepository(db, cfg.Database.Driver)
	if cfg.Auth.KVEncryptionKey != "" {
		store, err = kvstore.NewEncrypted(store, cfg.Auth.KVEncryptionKey)
		if err != nil {
			logger.Fatal("invalid KV_ENCRYPTION_KEY", zap.Error(err))
		}
	}

	dir, err := directory.Load(cfg.Search.DirectoryFile)
	if err != nil {
		logger.Fatal("failed to load search directory", zap.Error(err))
	}
	logger.Info("search directory loaded", zap.Int("entities", dir.Len()))

	renderer, err := render.New()
	if err != nil {
		logger.Fatal("failed to parse page templates", zap.Error(err))
	}

	client := backend.NewHTTPClient(cfg.Backend.BaseURL, cfg.Backend.Token, cfg.Backend.Timeout, logger)

	// Create services
	features := map[string]bool{
		"jwt_auth":      cfg.Auth.JWTSecret != "",
		"kv_encryption": cfg.Auth.KVEncryptionKey != "",
		"native_export": true,
	}
	systemService := service.NewSystemService(db, cfg.Database.Driver, version, features)
	statementService := service.NewStatementService(client, logger)
	clientService := service.NewClientDirectoryService(client, logger)
	recentService := service.NewRecentSearchService(store, cfg.Search.RecentLimit, logger)
	services := api.Services{
		System:     systemService,
		Statements: statementService,
		Exports:    service.NewExportService(statementService, client, logger),
		Clients:    clientService,
		Forms:      service.NewFormService(client, logger),
		Search:     service.NewSearchService(dir, recentService, search.NewDebouncer(cfg.Search.Debounce), logger),
		Recent:     recentService,
		Entities:   service.NewEntityService(client, logger),
		Profiles:   service.NewProfileService(client, logger),
		Renderer:   renderer,
	}

	// Background jobs
	jobs := scheduler.New(jobTimeout, logger)
	if err := jobs.Add("client_refresh", cfg.Scheduler.ClientRefresh, clientService.Refresh); err != nil {
		logger.Fatal("invalid CLIENT_REFRESH_SCHEDULE", zap.Error(err))
	}
	if err := jobs.Add("recent_prune", cfg.Scheduler.RecentPrune, func(ctx context.Context) error {
		_, err := recentService.Prune(ctx, cfg.Search.RecentTTL)
		return err
	}); err != nil {
		logger.Fatal("invalid RECENT_PRUNE_SCHEDULE", zap.Error(err))
	}
	jobs.Start()

	// Warm the client list; the scheduler keeps it fresh afterwards.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Backend.Timeout)
		defer cancel()
		if err := clientService.Refresh(ctx); err != nil {
			logger.Warn("initial client list load failed", zap.Error(err))
		}
	}()

	// Create router
	router := api.NewRouter(services, cfg, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Backend.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("starting server", zap.String("addr", cfg.Server.Addr), zap.String("version", version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	jobs.Stop(ctx)
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
