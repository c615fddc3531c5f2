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

	"github.com/gin-gonic/gin"

	"github.com/rdevrajsinh/totalenc/internal/config"
	"github.com/rdevrajsinh/totalenc/internal/handler"
	"github.com/rdevrajsinh/totalenc/internal/infrastructure/database"
	"github.com/rdevrajsinh/totalenc/internal/infrastructure/objectstore"
	"github.com/rdevrajsinh/totalenc/internal/logger"
	"github.com/rdevrajsinh/totalenc/internal/metrics"
	"github.com/rdevrajsinh/totalenc/internal/repository"
	"github.com/rdevrajsinh/totalenc/internal/service"
	"github.com/rdevrajsinh/totalenc/internal/validator"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Warn("Ignoring invalid log level",
			slog.String("level", cfg.LogLevel))
	}

	// Open storage
	store, cleanup, err := openStore(context.Background(), cfg)
	if err != nil {
		logger.Fatal("Failed to open storage",
			slog.String("backend", cfg.StorageBackend),
			slog.String("error", err.Error()))
	}
	defer cleanup()

	instrumented := repository.Instrument(store)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	mediaService, err := service.NewMediaService(service.MediaConfig{
		Dir:       cfg.UploadDir,
		URLPrefix: "/uploads",
		MaxFiles:  cfg.UploadMaxFiles,
		MaxBytes:  cfg.UploadMaxBytes,
	}, v)
	if err != nil {
		logger.Fatal("Failed to create media service",
			slog.String("error", err.Error()))
	}

	handlers := handler.Handlers{
		Health:   handler.NewHealthHandler(instrumented, version),
		Blogs:    handler.NewBlogHandler(service.NewBlogService(instrumented, v)),
		Products: handler.NewProductHandler(service.NewProductService(instrumented, v)),
		Services: handler.NewServiceHandler(service.NewServiceCatalog(instrumented, v)),
		Contact:  handler.NewContactHandler(service.NewContactService(instrumented, v)),
		Media:    handler.NewMediaHandler(mediaService, handler.UploadBodyLimit(cfg.UploadMaxFiles, cfg.UploadMaxBytes)),
		Comments: handler.NewCommentHandler(service.NewCommentService(service.DemoComments(time.Now()))),
		Users: handler.NewUserHandler(
			service.NewUserService(instrumented, v),
			service.NewAuthService(instrumented, cfg.AuthTokenSecret, cfg.AuthTokenTTL),
		),
	}

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handlers, cfg.UploadDir)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("backend", store.Backend()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

// openStore builds the configured storage backend. The returned cleanup
// stops background collectors and closes the store.
func openStore(ctx context.Context, cfg *config.Config) (repository.Store, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		store := repository.NewMemoryStore(repository.WithSeedData(cfg.SeedData))
		return store, func() { _ = store.Close() }, nil

	case config.BackendObject:
		bucket, err := objectstore.Open(cfg.ObjectStoreDriver, cfg.ObjectStorePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open object store: %w", err)
		}
		store := repository.NewObjectStore(bucket)
		if err := seed(ctx, cfg, store); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
		return store, func() { closeStore(store) }, nil

	case config.BackendPostgres:
		if err := database.Migrate(cfg.DatabaseURL); err != nil {
			return nil, nil, fmt.Errorf("migrate database: %w", err)
		}
		pool, err := database.NewPostgres(ctx, database.PoolConfig{
			URL:               cfg.DatabaseURL,
			MaxConns:          cfg.DBMaxConns,
			MinConns:          cfg.DBMinConns,
			MaxConnLifetime:   cfg.DBMaxConnLifetime,
			MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
			HealthCheckPeriod: cfg.DBHealthCheckPeriod,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}

		// Start database pool metrics collector
		collector := metrics.NewPoolStatsCollector(pool)
		collector.Start(15 * time.Second)

		store := repository.NewPostgresStore(pool)
		if err := seed(ctx, cfg, store); err != nil {
			collector.Stop()
			_ = store.Close()
			return nil, nil, err
		}
		return store, func() {
			metrics.LogPoolStats(pool)
			collector.Stop()
			closeStore(store)
		}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

func seed(ctx context.Context, cfg *config.Config, store repository.Store) error {
	if !cfg.SeedData {
		return nil
	}
	seeded, err := repository.SeedIfEmpty(ctx, store)
	if err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	if seeded {
		logger.Info("Seeded demo data", slog.String("backend", store.Backend()))
	}
	return nil
}

func closeStore(store repository.Store) {
	if err := store.Close(); err != nil {
		logger.Error("Failed to close storage",
			slog.String("error", err.Error()))
	}
}
