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

	adapthttp "nutrisec/internal/adapter/http"
	"nutrisec/internal/adapter/memory"
	"nutrisec/internal/adapter/postgres"
	"nutrisec/internal/adapter/sqlite"
	"nutrisec/internal/app"
	"nutrisec/internal/config"
	"nutrisec/internal/domain"
	"nutrisec/internal/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

// run owns every resource so deferred cleanup happens before main exits.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.Setup(cfg.LogLevel)

	repo, closeRepo, err := openRepository(cfg)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.Storage, err)
	}
	defer func() {
		if err := closeRepo(); err != nil {
			slog.Error("close storage", "error", err)
		}
	}()

	rules := app.DefaultRules()
	rules.Budget.MaxCalorie = cfg.MaxCalorie
	rules.Scoring.CoefP = cfg.CoefP
	rules.Scoring.PlausibleFloor = cfg.PlausibleFloor
	rules.CalPerGram = cfg.CalPerGram

	h := adapthttp.New(adapthttp.Services{
		Days:   app.NewDayService(repo, rules),
		Cardio: app.NewCardioService(repo),
		Weight: app.NewWeightService(repo),
		Meal:   app.NewMealService(repo, rules),
		Stats:  app.NewStatsService(repo, rules),
	}, logger.With("component", "http"), cfg.CORSOrigins).Handler()

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", cfg.Addr, "storage", cfg.Storage)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case <-quit:
	}

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	return nil
}

func openRepository(cfg config.Config) (domain.DayRepository, func() error, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return memory.New(), func() error { return nil }, nil
	case config.StoragePostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	}
}
