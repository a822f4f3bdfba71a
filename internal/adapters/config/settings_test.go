package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stanza/internal/adapters/config"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.DefaultConfigName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDiscover_NearestWinsPerField(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "demo")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	outer := writeConfig(t, root, `packagesFolder: /outer/packages
sources: [https://outer.example.org]
fallbackFolders: [/outer/fallback]
`)
	inner := writeConfig(t, nested, `sources: [https://inner.example.org]
`)

	s, err := config.Discover(nested)
	require.NoError(t, err)

	// The inner file sets sources; everything else falls through to the outer.
	assert.Equal(t, []string{"https://inner.example.org"}, s.EnabledSources())
	assert.Equal(t, "/outer/packages", s.GlobalPackagesFolder())
	assert.Equal(t, []string{"/outer/fallback"}, s.FallbackFolders())
	assert.Equal(t, []string{inner, outer}, s.ConfigFilePaths())
}

func TestDiscover_NoConfigFiles(t *testing.T) {
	s, err := config.Discover(t.TempDir())
	require.NoError(t, err)

	assert.NotEmpty(t, s.GlobalPackagesFolder())
	assert.Empty(t, s.EnabledSources())
	assert.Empty(t, s.ConfigFilePaths())
}

func TestDiscover_MalformedConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "sources: [unclosed")

	_, err := config.Discover(dir)
	require.Error(t, err)
}
