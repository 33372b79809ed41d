package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmeshcher/rewardful-client/pkg/rewardful"
)

func TestParseConfig(t *testing.T) {
	type want struct {
		secret        string
		baseURL       string
		timeout       time.Duration
		runAddress    string
		openAPIOutput string
		metricsFile   string
	}

	tests := []struct {
		name  string
		env   map[string]string
		flags []string
		want  want
	}{
		{
			name:  "defaults",
			env:   map[string]string{},
			flags: []string{},
			want: want{
				baseURL:       rewardful.DefaultBaseURL,
				timeout:       DefaultTimeout,
				runAddress:    DefaultRunAddress,
				openAPIOutput: DefaultOpenAPIOutput,
			},
		},
		{
			name: "env only",
			env: map[string]string{
				"REWARDFUL_SECRET":   "sk_env",
				"REWARDFUL_BASE_URL": "http://localhost:9999/v1",
				"REWARDFUL_TIMEOUT":  "5s",
				"RUN_ADDRESS":        "localhost:9999",
				"OPENAPI_OUTPUT":     "out.yaml",
				"METRICS_FILE":       "env.prom",
			},
			flags: []string{},
			want: want{
				secret:        "sk_env",
				baseURL:       "http://localhost:9999/v1",
				timeout:       5 * time.Second,
				runAddress:    "localhost:9999",
				openAPIOutput: "out.yaml",
				metricsFile:   "env.prom",
			},
		},
		{
			name: "flags only",
			env:  map[string]string{},
			flags: []string{
				"-s", "sk_flag",
				"-u", "http://flag:7777/v1",
				"-t", "1m",
				"-a", "localhost:7777",
				"-o", "flag.yaml",
				"-m", "flag.prom",
			},
			want: want{
				secret:        "sk_flag",
				baseURL:       "http://flag:7777/v1",
				timeout:       time.Minute,
				runAddress:    "localhost:7777",
				openAPIOutput: "flag.yaml",
				metricsFile:   "flag.prom",
			},
		},
		{
			name: "env overrides flags",
			env: map[string]string{
				"REWARDFUL_SECRET":  "sk_env",
				"REWARDFUL_TIMEOUT": "2s",
				"RUN_ADDRESS":       "env:9000",
			},
			flags: []string{
				"-s", "sk_flag",
				"-t", "10s",
				"-a", "flag:8000",
			},
			want: want{
				secret:        "sk_env",
				baseURL:       rewardful.DefaultBaseURL,
				timeout:       2 * time.Second,
				runAddress:    "env:9000",
				openAPIOutput: DefaultOpenAPIOutput,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			os.Args = append([]string{"test"}, tt.flags...)

			cfg, err := Parse()
			require.NoError(t, err)

			assert.Equal(t, tt.want.secret, cfg.Secret)
			assert.Equal(t, tt.want.baseURL, cfg.BaseURL)
			assert.Equal(t, tt.want.timeout, cfg.Timeout)
			assert.Equal(t, tt.want.runAddress, cfg.RunAddress)
			assert.Equal(t, tt.want.openAPIOutput, cfg.OpenAPIOutput)
			assert.Equal(t, tt.want.metricsFile, cfg.MetricsFile)
		})
	}
}

func TestParseConfig_RejectsNonPositiveTimeout(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	os.Args = []string{"test", "-t", "0s"}

	_, err := Parse()
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("REWARDFUL_SECRET=sk_dotenv\nRUN_ADDRESS=dotenv:1\n"), 0o600))

	t.Setenv("RUN_ADDRESS", "env:2")
	t.Setenv("REWARDFUL_SECRET", "")
	require.NoError(t, os.Unsetenv("REWARDFUL_SECRET"))

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))

	assert.Equal(t, "sk_dotenv", os.Getenv("REWARDFUL_SECRET"))
	assert.Equal(t, "env:2", os.Getenv("RUN_ADDRESS"))
	require.NoError(t, os.Unsetenv("REWARDFUL_SECRET"))
}
