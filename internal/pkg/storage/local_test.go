package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	key, err := s.Save(ctx, strings.NewReader("payload"), "/imports/abc.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "imports/abc.xlsx", key)

	rc, err := s.Open(ctx, key)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	objects, err := s.List(ctx, "imports")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "imports/abc.xlsx", objects[0].Path)
	assert.False(t, objects[0].ModifiedAt.IsZero())

	require.NoError(t, s.Delete(ctx, key))
	require.NoError(t, s.Delete(ctx, key), "deleting twice is fine")

	_, err = s.Open(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStorage_RejectsEscapingPaths(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Save(context.Background(), strings.NewReader("x"), "../outside.xlsx")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestLocalStorage_ListMissingDirectory(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	objects, err := s.List(context.Background(), "imports")
	require.NoError(t, err)
	assert.Empty(t, objects)
}
