package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-splendor/engine"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, "access-secret", cfg.JWTSecret)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, engine.DefaultSettings(), cfg.Settings())
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{"--port=8000", "--redis-addr=localhost:6379", "--redis-db=2", "--debug", "--seed=42", "--min-players=1", "--nobles=5"})
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.True(t, cfg.Debug)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, engine.Settings{MinPlayers: 1, Nobles: 5}, cfg.Settings())
}

func TestParseEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MIN_PLAYERS", "1")

	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 1, cfg.MinPlayers)
}

func TestParseRejectsUnsupportedPlayers(t *testing.T) {
	_, err := Parse([]string{"--min-players=3"})
	assert.ErrorContains(t, err, "min-players")
	_, err = Parse([]string{"--nobles=4"})
	assert.ErrorContains(t, err, "nobles")
	_, err = Parse([]string{"--port=abc"})
	assert.Error(t, err)
}
