package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-inspect/engine/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zap.InfoLevel, level.Level())

	level, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zap.DebugLevel, level.Level())

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oxy.log")
	cfg := config.Default().Log
	cfg.File = path

	logger, err := New(cfg)
	require.NoError(t, err)
	logger.Info("scene loaded", zap.Int("objects", 3))
	logger.Debug("filtered out")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"scene loaded"`)
	assert.Contains(t, string(data), `"objects":3`)
	assert.NotContains(t, string(data), "filtered out")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.Log{Level: "loud"})
	assert.Error(t, err)
}
