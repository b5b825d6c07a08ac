package persist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	assert := assert.New(t)
	assert.NoError(m.Save("key", []byte("blob")))
	stored, ok, err := m.Load("key")
	assert.NoError(err)
	assert.True(ok)
	assert.Equal("blob", string(stored))

	_, ok, err = m.Load("never-saved")
	assert.NoError(err)
	assert.False(ok)
}

func TestMemoryCopiesBlob(t *testing.T) {
	m := NewMemory()
	blob := []byte("original")
	assert.NoError(t, m.Save("key", blob))

	blob[0] = 'X'
	stored, ok, err := m.Load("key")

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal("original", string(stored))
}
