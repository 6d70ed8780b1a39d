package packages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBaseline(t *testing.T) {
	registry, err := LoadBaseline()
	require.NoError(t, err)

	assert.NotEmpty(t, registry.Packages)

	// The provisioning flow depends on these being present and enabled.
	for _, name := range []string{"curl", "unzip", "ca-certificates"} {
		pkg := registry.Get(name)
		require.NotNil(t, pkg, "baseline must contain %s", name)
		assert.True(t, pkg.Default, "%s must be enabled by default", name)
	}
}

func TestLoadBaselineCategories(t *testing.T) {
	registry, err := LoadBaseline()
	require.NoError(t, err)

	categories := registry.Categories()
	assert.Contains(t, categories, CategoryCLI)
	assert.Contains(t, categories, CategorySystem)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")
	content := `packages:
  - name: ripgrep
    description: Fast grep
    category: CLI Tools
    default: true
  - name: cowsay
    default: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	registry, err := LoadFile(path)
	require.NoError(t, err)

	require.Len(t, registry.Packages, 2)
	assert.Equal(t, []string{"ripgrep"}, registry.DefaultNames())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("/nonexistent/manifest.yaml")
	assert.Error(t, err)
}

func TestLoadFileInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("packages: [}"), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFileUnnamedPackage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("packages:\n  - description: nameless\n"), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestApplyExtrasAndSkips(t *testing.T) {
	registry, err := LoadBaseline()
	require.NoError(t, err)

	Apply(registry, []string{"ripgrep", "curl"}, []string{"vim"})

	rg := registry.Get("ripgrep")
	require.NotNil(t, rg)
	assert.True(t, rg.Default)

	// curl already exists; it must not be duplicated.
	count := 0
	for _, name := range registry.Names() {
		if name == "curl" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	// Skipped packages stay listed but disabled.
	vim := registry.Get("vim")
	require.NotNil(t, vim)
	assert.False(t, vim.Default)
	assert.NotContains(t, registry.DefaultNames(), "vim")
}
