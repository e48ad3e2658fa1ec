package swift

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.Color)
	assert.False(t, cfg.EditorMode)
	assert.False(t, cfg.Limited)
	assert.Equal(t, 0, cfg.MaxMissingCases)
	assert.Equal(t, CheckFull, cfg.Mode())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`
editor_mode: true
color: false
limited: true
max_missing_cases: 3
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.EditorMode)
	assert.False(t, cfg.Color)
	assert.Equal(t, 3, cfg.MaxMissingCases)
	assert.Equal(t, CheckLimited, cfg.Mode())
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("verbose: true\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Color, "unset keys keep their defaults")
}

func TestLoadConfigIfPresent(t *testing.T) {
	cfg, err := LoadConfigIfPresent(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(bad, []byte("{not yaml"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}
