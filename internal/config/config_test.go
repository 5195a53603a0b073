package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/2beens/bodystats/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[development]
host = "localhost"
port = 9000
environment = "development"
log_level = "trace"
logs_path = ""
log_to_stdout = true
sqlite_path = "./bodystats.db"
report_cache_size_mb = 4
report_cache_ttl_seconds = 120
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "2112"
allowed_origins = ["http://localhost:8080"]

[production]
host = ""
port = 9000
environment = "production"
log_level = "info"
sentry_enabled = true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, testConfig)

	cfg, err := config.Load("dev", path)
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.LogToStdout)
	assert.Equal(t, "./bodystats.db", cfg.SQLitePath)
	assert.Equal(t, 4, cfg.ReportCacheSizeMB)
	assert.Equal(t, 2*time.Minute, cfg.ReportCacheTTL())
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.AllowedOrigins)

	cfg, err = config.Load("Production", path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.SentryEnabled)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load("dev", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := writeConfig(t, testConfig)
	_, err = config.Load("staging", path)
	assert.EqualError(t, err, "unknown env: staging")

	onlyDev := writeConfig(t, "[development]\nport = 1\n")
	_, err = config.Load("prod", onlyDev)
	assert.EqualError(t, err, "no config section for env: prod")
}
