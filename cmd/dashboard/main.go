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

	"campaign-dashboard/internal/adapter/http"
	"campaign-dashboard/internal/adapter/usecase"
	"campaign-dashboard/internal/bootstrap"
	"campaign-dashboard/internal/config"
	"campaign-dashboard/internal/observability"
)

// main loads configuration, opens the configured campaign source and serves
// the dashboard over HTTP until SIGINT or SIGTERM, then shuts the server
// down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeSource, err := bootstrap.CampaignSource(ctx, cfg, logger)
	if err != nil {
		logger.Error("campaign source error", slog.Any("error", err))
		return
	}
	defer closeSource()

	metrics := observability.NewMetrics()
	svc := usecase.NewDashboardUseCase(repo, cfg.Palette.Dashboard(), metrics)

	handler, err := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		App:       cfg.App,
		RateLimit: cfg.HTTP.RateLimit,
		Secure:    cfg.HTTP.Secure,
		Metrics:   metrics,
	})
	if err != nil {
		logger.Error("handler setup error", slog.Any("error", err))
		return
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("source", cfg.Source.Kind))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	case err := <-serveErr:
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
			return
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
