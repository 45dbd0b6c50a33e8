package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	e := &env{configPath: filepath.Join(dir, "pennybook.yaml")}

	require.NoError(t, runInit(e, dir))

	assert.FileExists(t, filepath.Join(dir, "pennybook.yaml"))
	assert.FileExists(t, filepath.Join(dir, "data", "pennybook.db"))
}

func TestRunInit_AlreadyInitialized(t *testing.T) {
	dir := t.TempDir()
	e := &env{configPath: filepath.Join(dir, "pennybook.yaml")}

	require.NoError(t, runInit(e, dir))

	err := runInit(e, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestOpen_MissingConfig(t *testing.T) {
	e := &env{configPath: filepath.Join(t.TempDir(), "pennybook.yaml")}

	_, _, err := e.open()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
