package local

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-intent-chat/internal/artifact"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store, err := New(t.TempDir())
	require.NoError(t, err)

	ok, err := store.Exists(ctx, "asst_1.png")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = store.Open(ctx, "asst_1.png")
	assert.ErrorIs(t, err, artifact.ErrObjectNotFound)

	require.NoError(t, store.Upload(ctx, "asst_1.png", "image/png", []byte("v1")))
	require.NoError(t, store.Upload(ctx, "asst_1.png", "image/png", []byte("v2")))

	ok, err = store.Exists(ctx, "asst_1.png")
	require.NoError(t, err)
	assert.True(t, ok)

	body, info, err := store.Open(ctx, "asst_1.png")
	require.NoError(t, err)
	defer body.Close()
	data, _ := io.ReadAll(body)
	assert.Equal(t, "v2", string(data))
	assert.Equal(t, int64(2), info.Size)
	assert.Equal(t, "image/png", info.ContentType)
}

func TestStore_RejectsTraversal(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	err = store.Upload(context.Background(), "../escape.png", "image/png", []byte("x"))
	assert.ErrorIs(t, err, artifact.ErrInvalidName)

	_, err = store.Exists(context.Background(), "a/b.png")
	assert.ErrorIs(t, err, artifact.ErrInvalidName)
}
