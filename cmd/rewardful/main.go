// Package main запускает консольный клиент API Rewardful.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/mmeshcher/rewardful-client/internal/config"
	"github.com/mmeshcher/rewardful-client/internal/metrics"
	"github.com/mmeshcher/rewardful-client/pkg/rewardful"
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

	m := metrics.New(prometheus.NewRegistry())

	client := rewardful.NewClient(cfg.Secret,
		rewardful.WithBaseURL(cfg.BaseURL),
		rewardful.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		rewardful.WithLogger(logger),
		rewardful.WithObserver(m),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, client, flag.Args(), os.Stdout)

	if cfg.MetricsFile != "" {
		if werr := m.WriteTextfile(cfg.MetricsFile); werr != nil {
			sugar.Warnw("write metrics", "file", cfg.MetricsFile, "error", werr.Error())
		}
	}

	if err != nil {
		sugar.Fatalw("command failed", "error", err.Error())
	}
}
