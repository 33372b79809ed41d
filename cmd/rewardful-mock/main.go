// Package main запускает фиктивный API Rewardful для локальной разработки.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/rewardful-client/internal/config"
	"github.com/mmeshcher/rewardful-client/internal/metrics"
	"github.com/mmeshcher/rewardful-client/internal/mockserver"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	if err := config.LoadDotEnv(); err != nil {
		sugar.Fatalw("dotenv error", "error", err.Error())
	}

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}
	if cfg.Secret == "" {
		sugar.Fatalw("configuration error", "error", "REWARDFUL_SECRET or -s is required")
	}

	store, err := mockserver.DefaultStore()
	if err != nil {
		sugar.Fatalw("fixtures error", "error", err.Error())
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	mock := mockserver.New(store, cfg.Secret,
		mockserver.WithLogger(logger),
		mockserver.WithMiddleware(m.Middleware),
		mockserver.WithMetricsHandler(m.Handler()),
	)

	server := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           mock.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("starting rewardful mock server", "addr", cfg.RunAddress, "base_url", "http://"+cfg.RunAddress+"/v1")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
