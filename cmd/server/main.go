// Command server runs the shelter HTTP API.
//
//	@title			Shelter API
//	@version		1.0
//	@description	Animal shelter record-keeping API with bearer-token authentication.
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	_ "github.com/shelterworks/shelter-api/docs"
	"github.com/shelterworks/shelter-api/internal/api"
	"github.com/shelterworks/shelter-api/internal/api/handler"
	"github.com/shelterworks/shelter-api/internal/api/middleware"
	"github.com/shelterworks/shelter-api/internal/core/service"
	"github.com/shelterworks/shelter-api/internal/core/token"
	"github.com/shelterworks/shelter-api/internal/infrastructure/config"
	redisdb "github.com/shelterworks/shelter-api/internal/infrastructure/db/redis"
	"github.com/shelterworks/shelter-api/internal/infrastructure/store/memory"
	"github.com/shelterworks/shelter-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment()})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Stores and services (process-local, lost on restart) ---
	userStore := memory.NewUserStore()
	animalStore := memory.NewAnimalStore()
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userStore, codec, log)
	animalService := service.NewAnimalService(animalStore, log)

	if err := authService.SeedAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}

	// --- Optional Redis-backed rate limiter ---
	var (
		rdb         *redis.Client
		rateLimitMW echo.MiddlewareFunc
	)
	if cfg.Redis.Addr != "" {
		var err error
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
			rdb = nil
		} else {
			limiter := redisdb.NewRateLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)
			rateLimitMW = middleware.RateLimit(limiter, log)
		}
	}

	e := api.NewRouter(api.Deps{
		Logger:        log,
		Development:   cfg.IsDevelopment(),
		BodyLimit:     cfg.BodyLimit,
		CORSOrigins:   cfg.CORSOrigins,
		Auth:          middleware.Auth(codec),
		RateLimit:     rateLimitMW,
		AuthHandler:   handler.NewAuthHandler(authService),
		AnimalHandler: handler.NewAnimalHandler(animalService),
		Health:        handler.NewHealthHandler(rdb),
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("shelter api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
