package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return s
}

func TestLocalStorage_UploadAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	path, err := s.Upload(ctx, strings.NewReader("receipt-bytes"), "receipts/alice/a.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("receipts/alice/a.png"), path)

	data, err := os.ReadFile(filepath.Join(s.basePath, path))
	require.NoError(t, err)
	assert.Equal(t, "receipt-bytes", string(data))

	require.NoError(t, s.Delete(ctx, path))
	_, err = os.Stat(filepath.Join(s.basePath, path))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_DeleteMissingIsNoop(t *testing.T) {
	s := newTestStorage(t)
	assert.NoError(t, s.Delete(context.Background(), "receipts/none.png"))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.Upload(ctx, strings.NewReader("x"), "../outside.txt", "text/plain")
	assert.Error(t, err)
}

func TestLocalStorage_GetURL(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.GetURL(context.Background(), "receipts/alice/a.png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/receipts/alice/a.png", url)
}
