// Package config содержит логику чтения конфигурации клиента и вспомогательных утилит Rewardful.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mmeshcher/rewardful-client/pkg/rewardful"
)

// Значения по умолчанию.
const (
	DefaultTimeout       = 30 * time.Second
	DefaultRunAddress    = "localhost:8080"
	DefaultOpenAPIOutput = "openapi/rewardful.yaml"
)

// Config содержит параметры конфигурации утилит Rewardful.
type Config struct {
	Secret        string        `env:"REWARDFUL_SECRET"`
	BaseURL       string        `env:"REWARDFUL_BASE_URL"`
	Timeout       time.Duration `env:"REWARDFUL_TIMEOUT"`
	RunAddress    string        `env:"RUN_ADDRESS"`
	OpenAPIOutput string        `env:"OPENAPI_OUTPUT"`
	MetricsFile   string        `env:"METRICS_FILE"`
}

// LoadDotEnv загружает переменные из .env-файлов, не перезаписывая уже заданные. Отсутствующие файлы пропускаются.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
// Переменные окружения имеют приоритет над флагами.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envSecret := cfg.Secret
	envBaseURL := cfg.BaseURL
	envTimeout := cfg.Timeout
	envRunAddress := cfg.RunAddress
	envOpenAPIOutput := cfg.OpenAPIOutput
	envMetricsFile := cfg.MetricsFile

	flag.StringVar(&cfg.Secret, "s", "", "Rewardful API secret")
	flag.StringVar(&cfg.BaseURL, "u", rewardful.DefaultBaseURL, "Rewardful API base URL")
	flag.DurationVar(&cfg.Timeout, "t", DefaultTimeout, "HTTP request timeout")
	flag.StringVar(&cfg.RunAddress, "a", DefaultRunAddress, "address and port for mock server")
	flag.StringVar(&cfg.OpenAPIOutput, "o", DefaultOpenAPIOutput, "path of generated OpenAPI document")
	flag.StringVar(&cfg.MetricsFile, "m", "", "file to write client metrics to after the command")

	flag.Parse()

	if envSecret != "" {
		cfg.Secret = envSecret
	}
	if envBaseURL != "" {
		cfg.BaseURL = envBaseURL
	}
	if envTimeout != 0 {
		cfg.Timeout = envTimeout
	}
	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envOpenAPIOutput != "" {
		cfg.OpenAPIOutput = envOpenAPIOutput
	}
	if envMetricsFile != "" {
		cfg.MetricsFile = envMetricsFile
	}

	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}

	return cfg, nil
}
