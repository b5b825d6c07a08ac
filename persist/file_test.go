package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)

	assert.NoError(t, store.Save("snapshot", []byte(`{"projects":[]}`)))
	blob, ok, err := store.Load("snapshot")

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(`{"projects":[]}`, string(blob))
}

func TestFileStoreMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)

	blob, ok, err := store.Load("never-saved")

	assert := assert.New(t)
	assert.NoError(err)
	assert.False(ok)
	assert.Nil(blob)
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)

	assert.NoError(t, store.Save("snapshot", []byte("one")))
	assert.NoError(t, store.Save("snapshot", []byte("two")))
	blob, _, err := store.Load("snapshot")

	assert.NoError(t, err)
	assert.Equal(t, "two", string(blob))
}

func TestFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := NewFileStore(dir)

	assert.NoError(t, err)
	info, statErr := os.Stat(dir)
	assert.NoError(t, statErr)
	assert.True(t, info.IsDir())
}
