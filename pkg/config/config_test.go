package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "billing")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "billing", cfg.DBName)
	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "5001", cfg.ServerPort)
	assert.Equal(t, 5*time.Minute, cfg.PingInterval)
	assert.True(t, cfg.StrictFiltering)
	assert.Empty(t, cfg.SelfPingURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("DB_NAME", "billing")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SELF_PING_URL", "https://billing.example.com")
	t.Setenv("PING_INTERVAL", "10m")
	t.Setenv("STRICT_FILTERING", "false")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.ServerHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "https://billing.example.com", cfg.SelfPingURL)
	assert.Equal(t, 10*time.Minute, cfg.PingInterval)
	assert.False(t, cfg.StrictFiltering)
}

func TestLoad_RequiredKeys(t *testing.T) {
	t.Run("missing mongo uri", func(t *testing.T) {
		t.Setenv("MONGO_URI", "")
		t.Setenv("DB_NAME", "billing")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "MONGO_URI")
	})

	t.Run("missing db name", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("DB_NAME", "")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_NAME")
	})
}
