package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) *LocalStorage {
	t.Helper()
	store, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return store
}

func TestLocalStorage_SaveGetDelete(t *testing.T) {
	store := newLocal(t)
	ctx := context.Background()

	err := store.Save(ctx, "submissions/casting/face.jpg", strings.NewReader("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "submissions/casting/face.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := store.Get(ctx, "submissions/casting/face.jpg")
	require.NoError(t, err)
	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(content))

	require.NoError(t, store.Delete(ctx, "submissions/casting/face.jpg"))

	exists, err = store.Exists(ctx, "submissions/casting/face.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_DeleteMissingIsNoError(t *testing.T) {
	store := newLocal(t)
	assert.NoError(t, store.Delete(context.Background(), "nope/missing.bin"))
}

func TestLocalStorage_GetURL(t *testing.T) {
	store := newLocal(t)
	ctx := context.Background()

	url, err := store.GetURL(ctx, "a/b.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/api/files/a/b.jpg", url)

	store.baseURL = "https://cdn.studio.example"
	url, err = store.GetURL(ctx, "a/b.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.studio.example/a/b.jpg", url)
}
