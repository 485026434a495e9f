package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults fill missing values", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)

		// Then: every other field has its default
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.GameTTL)
		assert.False(t, conf.Solver.PlainMinimax)
		assert.True(t, conf.Solver.UseAlphaBeta())
		assert.Equal(t, 3, conf.Solver.BenchmarkRounds)
	})

	t.Run("File values override defaults", func(t *testing.T) {
		path := writeConfig(t, "redis:\n  host: cache\n  port: \"7000\"\nsolver:\n  plain-minimax: true\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "cache:7000", conf.Redis.GetRedisAddr())
		assert.True(t, conf.Solver.PlainMinimax)
		assert.False(t, conf.Solver.UseAlphaBeta())
	})

	t.Run("Environment selects plain minimax", func(t *testing.T) {
		t.Setenv("SOLVER_PLAIN_MINIMAX", "true")
		path := writeConfig(t, "log-level: info\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.False(t, conf.Solver.UseAlphaBeta())
	})

	t.Run("Error on missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yml")) })
	})
}
