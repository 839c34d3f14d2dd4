package blob

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabula-ai/fabula/pkg/config"
)

func TestLocal_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	key := "users/u1/covers/s1_cover.png"
	require.NoError(t, store.Put(ctx, key, []byte("png-bytes"), "image/png"))

	data, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	// URL resolves to a real file under the root.
	p := store.URL(key)
	require.NotEmpty(t, p)
	_, err = os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.root, "users", "u1", "covers", "s1_cover.png"), p)

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotExist)
	assert.ErrorIs(t, store.Delete(ctx, key), ErrNotExist)
}

func TestLocal_RejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../outside", "a/../../b", "/etc/passwd", "."} {
		err := store.Put(ctx, key, []byte("x"), "")
		var bu *BlobUnavailable
		require.ErrorAs(t, err, &bu, key)
	}
}

func TestFetch_LegacyFallback(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	// Stored before user scoping existed.
	require.NoError(t, store.Put(ctx, "covers/s1_cover.png", []byte("old"), "image/png"))

	data, err := Fetch(ctx, store, CoverKey("u1", "s1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), data)

	// Scoped blob wins when both exist.
	require.NoError(t, store.Put(ctx, CoverKey("u1", "s1"), []byte("new"), "image/png"))
	data, err = Fetch(ctx, store, CoverKey("u1", "s1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)

	// Unscoped keys miss without a retry target.
	_, err = Fetch(ctx, store, "covers/missing.png")
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "users/u1/covers/s1_cover.png", CoverKey("u1", "s1"))
	assert.Equal(t, "covers/s1_cover.png", CoverKey("", "s1"))
	assert.Equal(t, "users/u1/books/a.pdf", BookKey("u1", "a.pdf"))
	assert.Equal(t, "books/a.pdf", BookKey("", "a.pdf"))

	assert.Equal(t, "covers/s1_cover.png", LegacyKey("users/u1/covers/s1_cover.png"))
	assert.Equal(t, "", LegacyKey("covers/s1_cover.png"))
	assert.Equal(t, "", LegacyKey("users/u1"))
}

func TestSplitGCSURI(t *testing.T) {
	bucket, prefix, err := splitGCSURI("gs://fabula-books")
	require.NoError(t, err)
	assert.Equal(t, "fabula-books", bucket)
	assert.Empty(t, prefix)

	bucket, prefix, err = splitGCSURI("gs://fabula-books/prod/")
	require.NoError(t, err)
	assert.Equal(t, "fabula-books", bucket)
	assert.Equal(t, "prod", prefix)

	_, _, err = splitGCSURI("s3://nope")
	assert.Error(t, err)
	_, _, err = splitGCSURI("gs://")
	assert.Error(t, err)
}

func TestNew_PicksBackend(t *testing.T) {
	ctx := context.Background()

	store, err := New(ctx, &config.BlobConfig{BaseURI: "file://" + t.TempDir()})
	require.NoError(t, err)
	_, ok := store.(*Local)
	assert.True(t, ok)

	store, err = New(ctx, &config.BlobConfig{BaseURI: t.TempDir()})
	require.NoError(t, err)
	_, ok = store.(*Local)
	assert.True(t, ok)

	_, err = New(ctx, &config.BlobConfig{})
	assert.Error(t, err)
	_, err = New(ctx, nil)
	assert.Error(t, err)
}
