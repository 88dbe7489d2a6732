package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(`
match: exact
format: table
extension: .fcstd
workers: 4
cache_size: 16
log_level: debug
`), 0644))

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Match:     "exact",
		Format:    "table",
		Extension: ".fcstd",
		Workers:   4,
		CacheSize: 16,
		LogLevel:  "debug",
	}, cfg)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Match)

	_, err = Load(path, true)
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("workers: [1, 2"), 0644))

	_, err := Load(path, true)
	require.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("match: exact\nworkers: 2\n"), 0644))

	t.Setenv("FCREFS_MATCH", "pattern")
	t.Setenv("FCREFS_WORKERS", "8")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "pattern", cfg.Match)
	assert.Equal(t, 8, cfg.Workers)
}

func TestEnvInvalidInt(t *testing.T) {
	t.Setenv("FCREFS_CACHE_SIZE", "lots")

	_, err := Load("", false)
	require.Error(t, err)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", FirstNonEmpty("", "  ", "b", "c"))
	assert.Equal(t, "", FirstNonEmpty("", " "))
}
