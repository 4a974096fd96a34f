package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbograph/gql/config"
)

func TestLoadConfigWithDirReturnsNilWhenAbsent(t *testing.T) {
	require.Nil(t, loadConfigWithDir(t.TempDir()))
}

func TestLoadConfigWithDirLoadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gql.yaml"), []byte("dialect: v1_9\n"), 0o644))

	cfg := loadConfigWithDir(dir)
	require.NotNil(t, cfg)
	require.Equal(t, "v1_9", cfg.Dialect)
}

func TestLoadConfigWithDirWarnsOnMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gql.yaml"), []byte("dialect: [unterminated\n"), 0o644))

	r, w, err := os.Pipe()
	require.NoError(t, err)
	stderr := os.Stderr
	os.Stderr = w
	cfg := loadConfigWithDir(dir)
	os.Stderr = stderr
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Nil(t, cfg)
	require.Contains(t, string(out), "ignoring .gql.yaml")
}

func TestDialectFlagDefaultsToConfigThenDefault(t *testing.T) {
	require.Equal(t, "default", dialectFlag(nil).Value)
	require.Equal(t, "default", dialectFlag(&config.Config{}).Value)
	require.Equal(t, "v2_0", dialectFlag(&config.Config{Dialect: "v2_0"}).Value)
}

func TestFormatFlagDefaultsToConfigThenJSON(t *testing.T) {
	require.Equal(t, "json", formatFlag(nil).Value)
	require.Equal(t, "yaml", formatFlag(&config.Config{Format: "yaml"}).Value)
}
