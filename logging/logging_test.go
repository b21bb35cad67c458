package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuietWithoutFile(t *testing.T) {
	logger, err := New(Options{Level: "debug", Quiet: true})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	logger, err := New(Options{Level: "info", File: path, Quiet: true})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible")
	_ = logger.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "visible")
	assert.NotContains(t, string(b), "hidden")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}
