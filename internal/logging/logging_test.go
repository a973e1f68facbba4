package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).Info("session started", "size", 15)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "session started", rec["msg"])
	assert.Equal(t, float64(15), rec["size"])
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	logger, closer, err := New("")
	require.NoError(t, err)
	logger.Info("dropped")
	assert.NoError(t, closer.Close())
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizzer.log")
	logger, closer, err := New(path)
	require.NoError(t, err)

	logger.Warn("bank reloaded")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"bank reloaded"`)
}

func TestNew_BadPath(t *testing.T) {
	_, _, err := New(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	assert.Error(t, err)
}
