package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 15, cfg.Count)
	assert.Empty(t, cfg.BankPath)
	assert.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("bank: ./q.yaml\ncount: 10\nseed: 99\n"))
	require.NoError(t, err)
	assert.Equal(t, "./q.yaml", cfg.BankPath)
	assert.Equal(t, 10, cfg.Count)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Empty(t, cfg.LogPath)
}

func TestParse_KeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("log: /tmp/q.log\n"))
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Count)
	assert.Equal(t, "/tmp/q.log", cfg.LogPath)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "bnak: x\n"},
		{"wrong type", "count: many\n"},
		{"multiple documents", "count: 1\n---\ncount: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("QUIZZER_BANK", "/banks/go.json5")
	t.Setenv("QUIZZER_COUNT", "5")
	t.Setenv("QUIZZER_SEED", "12")
	t.Setenv("QUIZZER_LOG", "quiz.log")

	cfg, err := ApplyEnv(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, Config{BankPath: "/banks/go.json5", Count: 5, Seed: 12, LogPath: "quiz.log"}, cfg)
}

func TestApplyEnv_Invalid(t *testing.T) {
	t.Setenv("QUIZZER_COUNT", "five")
	_, err := ApplyEnv(DefaultConfig())
	assert.ErrorContains(t, err, "QUIZZER_COUNT")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizzer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 10\nbank: file.json5\n"), 0o644))
	t.Setenv("QUIZZER_COUNT", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, "file.json5", cfg.BankPath)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 0
	assert.Error(t, cfg.Validate())
}
