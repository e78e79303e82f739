package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logo-lms/config"
	"logo-lms/database"
	"logo-lms/logger"
	"logo-lms/repositories"
	"logo-lms/routes"
	"logo-lms/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	log := logger.New("api")
	if err := run(log); err != nil {
		log.Error("server stopped", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if cfg.RunMigrations {
		if err := database.Migrate(cfg.DatabaseURL()); err != nil {
			return log.Error("run migrations", err)
		}
		log.Success("migrations applied")
	}

	// Redis backs the blacklist when selected and the rate limiter whenever reachable.
	var redisClient redis.UniversalClient
	client, err := config.NewRedisClient(ctx, cfg.Redis)
	switch {
	case err == nil:
		redisClient = client
		defer client.Close()
	case cfg.TokenBlacklistBackend == config.BlacklistRedis:
		return log.Error("connect to redis at %s", err, cfg.Redis.Addr)
	default:
		log.Warn("redis unavailable, rate limiting disabled: %v", err)
	}

	var blacklist repositories.TokenBlacklist
	if cfg.TokenBlacklistBackend == config.BlacklistRedis {
		blacklist = repositories.NewRedisTokenBlacklist(redisClient)
	} else {
		blacklist = repositories.NewGormTokenBlacklist(db)
	}
	log.Info("token blacklist backend: %s", cfg.TokenBlacklistBackend)

	deps := routes.Deps{
		Config:    cfg,
		DB:        db,
		Redis:     redisClient,
		Blacklist: blacklist,
		Log:       log,
	}
	if cfg.S3.Bucket != "" {
		store, err := storage.NewS3Store(ctx, cfg.S3)
		if err != nil {
			return log.Error("init avatar storage", err)
		}
		deps.Avatars = store
	} else {
		log.Warn("S3_BUCKET not set, avatar uploads disabled")
	}

	router, err := routes.Setup(deps)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		if err != nil {
			return log.Error("listen", err)
		}
		return nil
	case <-quit:
	}

	log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return log.Error("graceful shutdown", err)
	}
	log.Success("server exited")
	return nil
}
