package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbograph/gql/config"
)

func TestFindWalksUpToParentDirectory(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	configPath := filepath.Join(root, ".gql.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("dialect: v2_0\n"), 0o644))

	found, err := config.Find(nested)
	require.NoError(t, err)
	require.Equal(t, configPath, found)
}

func TestFindPrefersNearestFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "child")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(root, ".gql.yaml"), []byte("dialect: v1_9\n"), 0o644))
	nearPath := filepath.Join(nested, ".gql.yaml")
	require.NoError(t, os.WriteFile(nearPath, []byte("dialect: v2_0\n"), 0o644))

	found, err := config.Find(nested)
	require.NoError(t, err)
	require.Equal(t, nearPath, found)
}

func TestFindReturnsErrNotFound(t *testing.T) {
	root := t.TempDir()
	_, err := config.Find(root)
	require.True(t, errors.Is(err, config.ErrNotFound))
}

func TestLoadParsesConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".gql.yaml"),
		[]byte("dialect: v2_0\nformat: yaml\ncolor: always\n"),
		0o644,
	))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, "v2_0", cfg.Dialect)
	require.Equal(t, "yaml", cfg.Format)
	require.Equal(t, config.ColorAlways, cfg.Color)
}

func TestLoadPropagatesErrNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := config.Load(dir)
	require.True(t, errors.Is(err, config.ErrNotFound))
}

func TestLoadFileRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dialect: [unterminated\n"), 0o644))

	_, err := config.LoadFile(path)
	require.Error(t, err)
}
