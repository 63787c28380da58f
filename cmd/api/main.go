package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-adoption-market/internal/adapters/auth/jwtauth"
	"pet-adoption-market/internal/adapters/objectstore/s3presign"
	"pet-adoption-market/internal/config"
	"pet-adoption-market/internal/platform/database"
	"pet-adoption-market/internal/platform/metrics"
	"pet-adoption-market/internal/router"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// @title Pet Adoption Market API
// @version 1.0
// @description Marketplace for pet adoption and fostering: listings, applications, vet verification and a lost-and-found board.
// @BasePath /
func main() {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load config")
	}

	logger := newLogger(cfg.Log)

	opts := router.Options{
		Metrics: metrics.New(),
		Logger:  logger,
	}

	if cfg.Database.DSN != "" {
		db, err := database.Open(cfg.Database.DSN)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		if err := database.Migrate(db); err != nil {
			logger.Fatal().Err(err).Msg("failed to run migrations")
		}
		opts.DB = db
	} else {
		logger.Warn().Msg("DB_DSN not set, using in-memory storage")
	}

	if cfg.JWT.Secret != "" {
		verifier, err := jwtauth.NewVerifier(cfg.JWT.Secret)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to build token verifier")
		}
		opts.AuthVerifier = verifier
	} else {
		logger.Warn().Msg("JWT_SECRET not set, accepting debug identity headers")
	}

	if cfg.S3.Bucket != "" {
		store, err := s3presign.New(context.Background(), s3presign.Options{
			Region:    cfg.S3.Region,
			Bucket:    cfg.S3.Bucket,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Endpoint:  cfg.S3.Endpoint,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to configure object storage")
		}
		opts.Presigner = store
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}

func newLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out = zerolog.New(os.Stdout)
	if cfg.Format == "console" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	return out.Level(level).With().Timestamp().Logger()
}
