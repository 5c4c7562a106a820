package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNested(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "a", "b")

	got, err := EnsureDir(dir)
	require.NoError(t, err)

	info, err := os.Stat(got)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadOrCreateKey_CreatesThenReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.key")

	k1, err := LoadOrCreateKey(path, 32)
	require.NoError(t, err)
	require.Len(t, k1, 32)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	k2, err := LoadOrCreateKey(path, 32)
	require.NoError(t, err)
	assert.Equal(t, k1, k2, "second load must return the same key")
}

func TestLoadOrCreateKey_WrongLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.key")
	require.NoError(t, os.WriteFile(path, []byte("short"), 0o600))

	_, err := LoadOrCreateKey(path, 32)
	assert.Error(t, err)
}
