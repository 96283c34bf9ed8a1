package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.PantryFile)
	assert.NotEmpty(t, cfg.RecipesFile)
	assert.Equal(t, "prod", cfg.Environment)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "larder.yaml")
	doc := `pantry_file: /data/pantry.yaml
environment: dev
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/pantry.yaml", cfg.PantryFile)
	assert.Equal(t, "dev", cfg.Environment)
	// Unset fields keep their defaults.
	assert.Equal(t, Default().RecipesFile, cfg.RecipesFile)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "larder.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pantry_file: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
