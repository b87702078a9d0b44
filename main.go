package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"ms-content/internal/config"
	"ms-content/internal/content/cache"
	"ms-content/internal/content/content_api"
	"ms-content/internal/content/service"
	"ms-content/internal/logger"
	"ms-content/internal/store"
)

// connectCache returns nil when caching is disabled or Redis is unreachable;
// the API then reads straight from the store.
func connectCache(cfg *config.Config, logger *logger.Logger) (*cache.RedisCache, *redis.Client) {
	if !cfg.Redis.Enabled {
		logger.Info("CACHE", "Redis cache disabled")
		return nil, nil
	}

	client, err := cache.InitializeCache(cfg.Redis.Addr, logger)
	if err != nil {
		logger.Warn("CACHE", fmt.Sprintf("Continuing without cache: %v", err))
		return nil, nil
	}
	return cache.NewRedisCache(client, cfg.Redis.CacheTTL, logger), client
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println(".env file not found, using environment variables")
	}

	cfg := config.Load()

	logger := logger.NewLogger(cfg.Log.ServiceName)
	defer logger.Close()

	logger.Info("APP", "Starting content API")

	ctx := context.Background()
	st, err := store.Open(ctx, store.Options{
		Path:        cfg.Database.Path,
		BusyTimeout: cfg.Database.BusyTimeout,
		Logger:      logger,
	})
	if err != nil {
		logger.Fatal("DATABASE", fmt.Sprintf("Failed to open content store %s: %v", cfg.Database.Path, err))
	}
	defer st.Close()

	contentCache, redisClient := connectCache(cfg, logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// A nil *RedisCache must not reach the service's Cache interface.
	var svc *service.ContentService
	if contentCache != nil {
		svc = service.NewContentService(st, contentCache, logger)
	} else {
		svc = service.NewContentService(st, nil, logger)
	}
	handler := content_api.NewHandler(svc, logger)
	handler.AllowedOrigins = cfg.Server.AllowedOrigins

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP", fmt.Sprintf("Content API running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP", fmt.Sprintf("HTTP server error: %v", err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	logger.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	logger.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("HTTP", fmt.Sprintf("Server Shutdown Failed: %v", err))
	} else {
		logger.Info("HTTP", "Content API shutdown complete")
	}
}
