package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	dir := t.TempDir()

	logger, closer, path, err := New(Options{Dir: dir, RunID: "test-run"})
	require.NoError(t, err)

	logger.Info("hello", "key", "value")
	require.NoError(t, closer())

	assert.Equal(t, filepath.Join(dir, "provision-test-run.log"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "key=value")
	assert.Contains(t, string(data), "run_id=test-run")
}

func TestNewEcho(t *testing.T) {
	var buf bytes.Buffer

	logger, closer, _, err := New(Options{Dir: t.TempDir(), RunID: "r1", Echo: &buf})
	require.NoError(t, err)
	defer closer()

	logger.Info("echoed line")
	assert.Contains(t, buf.String(), "echoed line")
}

func TestNewRequiresRunID(t *testing.T) {
	_, _, _, err := New(Options{Dir: t.TempDir()})
	assert.Error(t, err)
}

func TestNewCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	_, closer, path, err := New(Options{Dir: dir, RunID: "r2"})
	require.NoError(t, err)
	defer closer()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
