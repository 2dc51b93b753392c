package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestObjectStore(t *testing.T) (*LocalObjectStore, string) {
	t.Helper()
	dir := t.TempDir()
	objectStore, err := NewLocalObjectStore(dir)
	require.NoError(t, err)
	return objectStore, dir
}

func TestLocalObjectStore_PutObject(t *testing.T) {
	objectStore, baseDir := setupTestObjectStore(t)

	key := "uploads/test-file.jpg"
	content := []byte("Test content")

	err := objectStore.PutObject(context.Background(), key, bytes.NewReader(content))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(baseDir, key))
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestLocalObjectStore_GetObject(t *testing.T) {
	objectStore, _ := setupTestObjectStore(t)

	key := "uploads/test-file.jpg"
	content := []byte("Test content")

	require.NoError(t, objectStore.PutObject(context.Background(), key, bytes.NewReader(content)))

	reader, err := objectStore.GetObject(context.Background(), key)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestLocalObjectStore_GetObject_Missing(t *testing.T) {
	objectStore, _ := setupTestObjectStore(t)

	_, err := objectStore.GetObject(context.Background(), "uploads/missing.jpg")
	require.Error(t, err)
}

func TestLocalObjectStore_DeleteObject(t *testing.T) {
	objectStore, baseDir := setupTestObjectStore(t)

	key := "uploads/test-file.jpg"
	require.NoError(t, objectStore.PutObject(context.Background(), key, bytes.NewReader([]byte("content"))))

	require.NoError(t, objectStore.DeleteObject(context.Background(), key))

	_, err := os.Stat(filepath.Join(baseDir, key))
	assert.True(t, os.IsNotExist(err))

	// Deleting a missing object is not an error.
	require.NoError(t, objectStore.DeleteObject(context.Background(), key))
}
