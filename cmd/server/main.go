package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/panelhub/user-service/internal/api"
	"github.com/panelhub/user-service/internal/core/service"
	mongodb "github.com/panelhub/user-service/internal/infrastructure/db/mongo"
	"github.com/panelhub/user-service/internal/pkg/config"
	"github.com/panelhub/user-service/pkg/hasher"
	"github.com/panelhub/user-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	passwordHasher := hasher.NewBcrypt(cfg.BcryptCost)
	userService := service.NewUserService(userRepo, passwordHasher, log)
	authService := service.NewAuthService(userRepo, passwordHasher, log)
	demoService := service.NewDemoService(userRepo, passwordHasher, log)

	if cfg.SeedDemo {
		if _, err := demoService.SeedDemoUsers(ctx); err != nil {
			log.Fatal().Err(err).Msg("demo seeding failed")
		}
	}

	e := api.NewRouter(db, userService, authService, demoService, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
