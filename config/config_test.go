package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, Config{
		HTTPAddr:          "127.0.0.1:8000",
		LogLevel:          "info",
		LogFormat:         "text",
		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}, cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("SEED_FILE", "seed.yaml")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.HTTPAddr)
	require.Equal(t, "seed.yaml", cfg.SeedFile)
	require.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\nLOG_FORMAT=json\n"), 0o600))
	// godotenv sets real process variables; t.Setenv restores them afterwards
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FORMAT")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
}

func TestLoadEnvWinsOverDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_ADDR=:1111\n"), 0o600))
	t.Setenv("HTTP_ADDR", ":2222")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":2222", cfg.HTTPAddr)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	_, err := Load()
	require.ErrorContains(t, err, "parse env:")
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(Config{LogLevel: "debug", LogFormat: "json"})
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, log.GetLevel())
	require.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	_, err = NewLogger(Config{LogLevel: "loud", LogFormat: "text"})
	require.ErrorContains(t, err, "log level")

	_, err = NewLogger(Config{LogLevel: "info", LogFormat: "xml"})
	require.ErrorContains(t, err, "log format")
}
