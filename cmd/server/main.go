// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shopledger/backend/internal/config"
	"github.com/shopledger/backend/internal/database"
	"github.com/shopledger/backend/internal/i18n"
	"github.com/shopledger/backend/internal/router"
	"github.com/shopledger/backend/internal/services"
	"github.com/shopledger/backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	setupLogging(cfg)

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.LocalesPath, cfg.I18n.DefaultLocale); err != nil {
		logrus.Fatalf("Failed to initialize i18n: %v", err)
	}

	// Open the document store
	docs, err := openStore(cfg)
	if err != nil {
		logrus.Fatalf("Failed to open %s store: %v", cfg.Store.Driver, err)
	}
	defer docs.Close()

	repo, err := prepareRepository(context.Background(), docs, cfg)
	if err != nil {
		logrus.Fatalf("Failed to prepare %s store: %v", cfg.Store.Driver, err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Initialize router
	r, err := router.Initialize(ctx, repo, cfg)
	if err != nil {
		docs.Close()
		logrus.Fatalf("Failed to initialize router: %v", err)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":  srv.Addr,
			"store": cfg.Store.Driver,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}

// prepareRepository probes docs, loads the shop state and seeds the administrator. docs is
// closed when any step fails.
func prepareRepository(ctx context.Context, docs store.DocumentStore, cfg *config.Config) (*store.Repository, error) {
	repo, err := loadRepository(ctx, docs, cfg)
	if err != nil {
		if closeErr := docs.Close(); closeErr != nil {
			logrus.WithError(closeErr).Warn("Failed to close store")
		}
		return nil, err
	}
	return repo, nil
}

func loadRepository(ctx context.Context, docs store.DocumentStore, cfg *config.Config) (*store.Repository, error) {
	probeCtx, cancel := context.WithTimeout(ctx, cfg.Store.ProbeTimeout)
	defer cancel()
	if err := docs.Ping(probeCtx); err != nil {
		return nil, fmt.Errorf("store is unreachable: %w", err)
	}

	repo := store.NewRepository(docs)
	if err := repo.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load shop data: %w", err)
	}

	authService := services.NewAuthService(repo, cfg, services.NewUserService(repo))
	if err := authService.EnsureAdmin(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed administrator: %w", err)
	}
	return repo, nil
}

func setupLogging(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Log.Format == "json" || cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func openStore(cfg *config.Config) (store.DocumentStore, error) {
	switch cfg.Store.Driver {
	case "postgres":
		db, err := database.Initialize(cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(db); err != nil {
			database.Close(db)
			return nil, err
		}
		return store.NewGormStore(db), nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return store.NewRedisStore(rdb, cfg.Redis.KeyPrefix), nil
	default:
		logrus.Warn("Using in-memory store, data will not survive a restart")
		return store.NewMemoryStore(), nil
	}
}
