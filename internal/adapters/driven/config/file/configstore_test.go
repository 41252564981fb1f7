package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
	assert.DirExists(t, dir)
}

func TestSetAndGet_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyChunkSize, 250))
	require.NoError(t, store.Set(KeyThreshold, 0.2))
	require.NoError(t, store.Set(KeyDataDir, "/tmp/vault"))

	// A fresh store reading the same file sees the persisted values.
	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, 250, reloaded.GetInt(KeyChunkSize))
	assert.InDelta(t, 0.2, reloaded.GetFloat(KeyThreshold), 1e-9)
	assert.Equal(t, "/tmp/vault", reloaded.GetString(KeyDataDir))
}

func TestGet_MissingKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("nonexistent"))
	assert.Equal(t, 0, store.GetInt("nonexistent"))
	assert.Zero(t, store.GetFloat("nonexistent"))
}

func TestGetFloat_AcceptsIntegerValue(t *testing.T) {
	dir := t.TempDir()

	// Users may write relevance_threshold = 1 in the TOML by hand.
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("relevance_threshold = 1\n"), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, store.GetFloat(KeyThreshold), 1e-9)
}

func TestGetString_WrongType(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeySearchLimit, 10))
	assert.Equal(t, "", store.GetString(KeySearchLimit))
}

func TestSave_FilePermissions(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyAnswerLimit, 3))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
