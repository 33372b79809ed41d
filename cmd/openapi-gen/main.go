// Package main записывает документ OpenAPI, построенный по описаниям эндпоинтов клиента.
package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mmeshcher/rewardful-client/internal/config"
	"github.com/mmeshcher/rewardful-client/internal/openapi"
	"github.com/mmeshcher/rewardful-client/pkg/endpoint"
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

	doc, err := openapi.Build(endpoint.All(), cfg.BaseURL)
	if err != nil {
		sugar.Fatalw("build document", "error", err.Error())
	}

	data, err := openapi.Marshal(doc)
	if err != nil {
		sugar.Fatalw("encode document", "error", err.Error())
	}

	if dir := filepath.Dir(cfg.OpenAPIOutput); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			sugar.Fatalw("create output directory", "dir", dir, "error", err.Error())
		}
	}

	if err := os.WriteFile(cfg.OpenAPIOutput, data, 0o644); err != nil {
		sugar.Fatalw("write document", "file", cfg.OpenAPIOutput, "error", err.Error())
	}

	sugar.Infow("openapi document written", "file", cfg.OpenAPIOutput, "paths", len(doc.Paths))
}
