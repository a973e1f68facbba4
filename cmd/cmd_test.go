package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "quizzer (devel)\n", out)
}

func TestCheck_Embedded(t *testing.T) {
	out, err := execute(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Go Fundamentals")
	assert.Contains(t, out, "source:    embedded")
	assert.Contains(t, out, "session:   15 questions")
}

func TestCheck_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	data := `title: Capitals
questions:
  - question: Capital of France?
    options: [Paris, Rome]
    type: single
    answer: 0
  - question: Cities in Italy?
    options: [Milan, Lyon, Turin]
    type: multiple
    answer: [0, 2]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, err := execute(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Capitals")
	assert.Contains(t, out, "questions: 2 (1 single, 1 multiple)")
	assert.Contains(t, out, "session:   2 questions")
}

func TestCheck_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"question": "q", "options": ["a", "b"], "type": "single", "answer": 5}]`), 0o644))

	_, err := execute(t, "check", path)
	assert.ErrorContains(t, err, "question 1")
}

func TestNewRand(t *testing.T) {
	assert.Nil(t, newRand(0))

	a, b := newRand(42), newRand(42)
	require.NotNil(t, a)
	assert.Equal(t, a.Uint64(), b.Uint64())
}
