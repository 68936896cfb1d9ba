package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresMongoURL(t *testing.T) {
	t.Setenv("MONGO_URL", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "MONGO_URL")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 3000, cfg.Server.Port)
	require.Equal(t, "eventsdb", cfg.Mongo.Database)
	require.Equal(t, 10, cfg.Mongo.ConnectTimeoutSeconds)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, 0, cfg.RateLimit.PublicPerMinute)
	require.False(t, cfg.Tracing.Enabled)
	require.Equal(t, "development", cfg.Environment)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://db.internal:27017")
	t.Setenv("MONGO_DATABASE", "staging_events")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("RATE_LIMIT_PUBLIC", "120")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "mongodb://db.internal:27017", cfg.Mongo.URL)
	require.Equal(t, "staging_events", cfg.Mongo.Database)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "console", cfg.Logging.Format)
	require.Equal(t, 120, cfg.RateLimit.PublicPerMinute)
}

func TestLoadNonNumericEnvFallsBack(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("SERVER_PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3000, cfg.Server.Port)
}

func TestLoadFileOverlaysEnv(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("SERVER_PORT", "8080")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  port: 9090\nmongo:\n  database: file_events\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	// File wins over env, untouched keys keep env/default values.
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "file_events", cfg.Mongo.Database)
	require.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URL)
}

func TestLoadFileRejectsInvalidValues(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("logging:\n  format: xml\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadFileMissing(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
