package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)

	logger.Debug("hidden %d", 1)
	logger.Info("shown %d", 2)
	logger.Warning("careful")
	logger.Error("broken")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO] ")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "[WARN] ")
	assert.Contains(t, out, "[ERROR] ")
}

func TestWriterLoggerVerboseDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, true)

	logger.Debug("visible %s", "now")

	assert.Contains(t, buf.String(), "[DEBUG] ")
	assert.Contains(t, buf.String(), "visible now")
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "minigrep.log")

	logger, err := NewLogger(path, false)
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestConfigureReplacesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.log")

	logger := Configure(path, true)
	t.Cleanup(func() { logger.Close() })

	assert.Same(t, logger, GetLogger())

	Debug("through default")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "through default")
}
