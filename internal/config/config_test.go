package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sitegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("content:\n  dir: ./data\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./data", cfg.Content.Dir)
	assert.Equal(t, "./data/blog", cfg.Content.BlogDir)
	assert.Equal(t, "./site", cfg.Output.Directory)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "./site/data/newsletter_signups.csv", cfg.Server.SignupsPath)
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("SITEGEN_TEST_OUT", "/tmp/generated")
	dir := t.TempDir()
	path := filepath.Join(dir, "sitegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  directory: ${SITEGEN_TEST_OUT}\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/generated", cfg.Output.Directory)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration file not found")
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitegen.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.Server.RebuildInterval)

	assert.Error(t, Init(path, false), "existing file needs --force")
	assert.NoError(t, Init(path, true))
}
