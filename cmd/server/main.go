package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dzhusipov/fleet-core/internal/config"
	"github.com/dzhusipov/fleet-core/internal/i18n"
	"github.com/dzhusipov/fleet-core/internal/infra"
	"github.com/dzhusipov/fleet-core/internal/router"
	"github.com/dzhusipov/fleet-core/internal/worker"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	bundle, err := i18n.Load(cfg.DefaultLanguage)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load translations")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	if err := infra.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := infra.NewStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to object storage")
	}

	// Router is the composition root: it wires repositories, services and
	// handlers, and fills in the background worker dependencies.
	deps := &router.Deps{
		DB:      db,
		RDB:     rdb,
		Bundle:  bundle,
		Store:   store,
		Sweeper: &worker.SweeperConfig{Interval: time.Duration(cfg.SweepIntervalHours) * time.Hour},
	}
	r := router.New(cfg, deps)

	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, deps.Notifier)
	worker.StartSweeper(ctx, *deps.Sweeper)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("fleet-core API listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
