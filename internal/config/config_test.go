package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("/home/me/books")
	cfg.Defaults.AccountID = 3
	cfg.Import.PreviewRows = 250

	path := filepath.Join(t.TempDir(), "pennybook.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Database.Path, got.Database.Path)
	assert.Equal(t, cfg.Defaults.Currency, got.Defaults.Currency)
	assert.Equal(t, int64(3), got.Defaults.AccountID)
	assert.Equal(t, 250, got.Import.PreviewRows)
}

func TestDefaults(t *testing.T) {
	cfg := Default("/home/me/books")

	assert.Equal(t, filepath.Join("/home/me/books", "data", "pennybook.db"), cfg.Database.Path)
	assert.Equal(t, "CAD", cfg.Defaults.Currency)
	assert.Zero(t, cfg.Defaults.AccountID)
	assert.Equal(t, 500, cfg.Import.PreviewRows)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("/home/me/books")
	path := filepath.Join(t.TempDir(), "pennybook.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "database:")
	assert.Contains(t, contents, "currency: CAD")
	assert.Contains(t, contents, "preview_rows: 500")
}
