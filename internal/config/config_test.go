package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClient_Defaults(t *testing.T) {
	t.Setenv("SM2SYNC_SERVER_URL", "")
	t.Setenv("SM2SYNC_DB_PATH", "")
	t.Setenv("SM2SYNC_REMOTE_TIMEOUT", "")
	t.Setenv("SM2SYNC_SYNC_INTERVAL", "")
	t.Setenv("SM2SYNC_LOG_LEVEL", "")

	cfg, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, "sm2sync-client.db", cfg.DBPath)
	assert.Equal(t, 15*time.Second, cfg.RemoteTimeout)
	assert.Zero(t, cfg.SyncInterval)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoadClient_FromEnv(t *testing.T) {
	t.Setenv("SM2SYNC_SERVER_URL", "https://sm2.example.com")
	t.Setenv("SM2SYNC_DB_PATH", "/tmp/client.db")
	t.Setenv("SM2SYNC_REMOTE_TIMEOUT", "3s")
	t.Setenv("SM2SYNC_SYNC_INTERVAL", "5m")
	t.Setenv("SM2SYNC_LOG_LEVEL", "debug")

	cfg, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, "https://sm2.example.com", cfg.ServerURL)
	assert.Equal(t, "/tmp/client.db", cfg.DBPath)
	assert.Equal(t, 3*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, 5*time.Minute, cfg.SyncInterval)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadClient_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad timeout", key: "SM2SYNC_REMOTE_TIMEOUT", value: "soon"},
		{name: "zero timeout", key: "SM2SYNC_REMOTE_TIMEOUT", value: "0s"},
		{name: "negative interval", key: "SM2SYNC_SYNC_INTERVAL", value: "-1m"},
		{name: "bad level", key: "SM2SYNC_LOG_LEVEL", value: "loud"},
		{name: "bad url", key: "SM2SYNC_SERVER_URL", value: "localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadClient()
			assert.Error(t, err)
		})
	}
}

func TestLoadServer(t *testing.T) {
	t.Setenv("SM2SYNC_ADDR", ":9090")
	t.Setenv("SM2SYNC_JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("SM2SYNC_TOKEN_TTL", "1h")
	t.Setenv("SM2SYNC_RATE_LIMIT", "10")
	t.Setenv("SM2SYNC_TRUST_PROXY", "true")

	cfg, err := LoadServer()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.True(t, cfg.TrustProxy)
	assert.NoError(t, cfg.Validate())
}

func TestServerConfig_Validate(t *testing.T) {
	valid := ServerConfig{
		JWTSecret:       "0123456789abcdef0123456789abcdef",
		TokenTTL:        time.Hour,
		RateLimit:       1,
		RateLimitWindow: time.Second,
	}
	require.NoError(t, valid.Validate())

	noSecret := valid
	noSecret.JWTSecret = ""
	assert.ErrorContains(t, noSecret.Validate(), "SM2SYNC_JWT_SECRET")

	short := valid
	short.JWTSecret = "short"
	assert.Error(t, short.Validate())

	noTTL := valid
	noTTL.TokenTTL = 0
	assert.Error(t, noTTL.Validate())

	// Без лимита окно не важно
	unlimited := valid
	unlimited.RateLimit = 0
	unlimited.RateLimitWindow = 0
	assert.NoError(t, unlimited.Validate())
}

func TestLoadServer_InvalidRateLimit(t *testing.T) {
	t.Setenv("SM2SYNC_RATE_LIMIT", "many")
	_, err := LoadServer()
	assert.Error(t, err)
}

func TestLoadServer_InvalidTrustProxy(t *testing.T) {
	t.Setenv("SM2SYNC_TRUST_PROXY", "maybe")
	_, err := LoadServer()
	assert.ErrorContains(t, err, "SM2SYNC_TRUST_PROXY")
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SM2SYNC_DB_PATH=/data/from-file.db\n"), 0600))

	t.Setenv("SM2SYNC_DB_PATH", "")
	require.NoError(t, os.Unsetenv("SM2SYNC_DB_PATH"))
	require.NoError(t, LoadEnvFile(path))
	t.Cleanup(func() { _ = os.Unsetenv("SM2SYNC_DB_PATH") })

	cfg, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, "/data/from-file.db", cfg.DBPath)

	assert.Error(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "key=value")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("error")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}
