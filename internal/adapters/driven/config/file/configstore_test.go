package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set(KeyLanguage, "pt-BR"))
	require.NoError(t, store.Set(KeyBeautify, true))

	assert.Equal(t, "pt-BR", store.GetString(KeyLanguage))
	assert.True(t, store.GetBool(KeyBeautify))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypeMismatch(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set(KeyLanguage, true))
	assert.Empty(t, store.GetString(KeyLanguage))

	require.NoError(t, store.Set(KeyBeautify, "yes"))
	assert.False(t, store.GetBool(KeyBeautify))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyIncludeCustomFields, true))
	require.NoError(t, store.Set(KeyLanguage, "en"))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.True(t, reloaded.GetBool(KeyIncludeCustomFields))
	assert.Equal(t, "en", reloaded.GetString(KeyLanguage))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "language = \"en\"\n\n[convert]\nbeautify = true\nfail_fast = false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.True(t, store.GetBool(KeyBeautify))
	assert.Equal(t, "en", store.GetString(KeyLanguage))

	val, ok := store.Get(KeyFailFast)
	assert.True(t, ok)
	assert.Equal(t, false, val)
}

func TestConfigStore_LoadMissingFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Load())
	assert.Empty(t, store.GetString(KeyLanguage))
}
