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
	assert.Equal(t, "and", cfg.Conjunction)
	assert.Equal(t, "Sheet1", cfg.Sheet)
	assert.Equal(t, 26, cfg.Headers.Count)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colname.yaml")
	require.NoError(t, os.WriteFile(path, []byte("conjunction: or\nheaders:\n  start: -5\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "or", cfg.Conjunction)
	assert.Equal(t, int64(-5), cfg.Headers.Start)
	assert.Equal(t, 26, cfg.Headers.Count)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colname.yaml")

	cfg := DefaultConfig()
	cfg.Origin = 3
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"syntax.yaml": "conjunction: [",
		"origin.yaml": "origin: -1",
		"level.yaml":  "logging:\n  level: loud",
		"empty.yaml":  "conjunction: \"\"",
		"count.yaml":  "headers:\n  count: 16385",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		_, err := Load(path)
		assert.Error(t, err, name)
	}
}
