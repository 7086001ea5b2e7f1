package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	db := New()
	assert.Equal(t, 0, db.Length())

	db.Set("AAAA", "alice.png")
	db.Set("BBBB", "bob.png")
	assert.Equal(t, 2, db.Length())

	// First entry for a digest wins
	db.Set("AAAA", "other.png")
	filename, ok := db.Get("AAAA")
	require.True(t, ok)
	assert.Equal(t, "alice.png", filename)

	_, ok = db.Get("CCCC")
	assert.False(t, ok)
}

func TestMarshalText(t *testing.T) {
	db := New()
	db.Set("BBBB", "bob.png")
	db.Set("AAAA", "alice.png")

	b, err := db.MarshalText()
	require.NoError(t, err)

	// Sorted by digest regardless of insertion order
	assert.Equal(t, "AAAA\talice.png\nBBBB\tbob.png\n", string(b))
}

func TestUnmarshalText(t *testing.T) {
	db := New()
	require.NoError(t, db.UnmarshalText([]byte("AAAA\talice.png\nBBBB\tbob.png\n")))

	assert.Equal(t, 2, db.Length())

	filename, ok := db.Get("BBBB")
	require.True(t, ok)
	assert.Equal(t, "bob.png", filename)
}

func TestUnmarshalTextMalformed(t *testing.T) {
	db := New()
	assert.Error(t, db.UnmarshalText([]byte("no tab here\n")))
}
