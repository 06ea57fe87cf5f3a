package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, ".novapay", cfg.Store.Dir)
	assert.Equal(t, "localhost", cfg.Store.Redis.Host)
	assert.Equal(t, 6379, cfg.Store.Redis.Port)
	assert.Equal(t, 0, cfg.Store.Redis.DB)

	assert.Equal(t, "gemini-3-flash-preview", cfg.Gemini.Model)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.Gemini.BaseURL)
	assert.Empty(t, cfg.Gemini.APIKey)

	assert.Equal(t, "https://api.qrserver.com/v1/create-qr-code/", cfg.QR.BaseURL)

	assert.Equal(t, 1500*time.Millisecond, cfg.Transfer.VerifyDelay)
	assert.Equal(t, 2*time.Second, cfg.Transfer.TransferDelay)
	assert.Equal(t, 2*time.Second, cfg.Transfer.SuccessHold)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: 127.0.0.1
  port: 9090
  mode: release
store:
  backend: redis
  redis:
    host: redis.internal
    port: 6380
gemini:
  api_key: test-key
  model: gemini-test
transfer:
  verify_delay: 10ms
  transfer_delay: 20ms
  success_hold: 30ms
log:
  level: debug
  pretty: true
`)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "redis", cfg.Store.Backend)
	assert.Equal(t, "redis.internal:6380", cfg.Store.Redis.Addr())
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-test", cfg.Gemini.Model)
	assert.Equal(t, 10*time.Millisecond, cfg.Transfer.VerifyDelay)
	assert.Equal(t, 20*time.Millisecond, cfg.Transfer.TransferDelay)
	assert.Equal(t, 30*time.Millisecond, cfg.Transfer.SuccessHold)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("NOVAPAY_SERVER_PORT", "7777")
	t.Setenv("NOVAPAY_GEMINI_API_KEY", "env-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.Gemini.APIKey)
}

func TestRedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "redis.example.com", Port: 6380}
	assert.Equal(t, "redis.example.com:6380", cfg.Addr())
}
