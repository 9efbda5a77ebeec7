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

func TestLocalStoragePutAndDelete(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStorage(root, "http://localhost:3000/uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "uploads", "1700000000000-abc.png", strings.NewReader("png"), 3, "image/png"))

	data, err := os.ReadFile(filepath.Join(root, "uploads", "1700000000000-abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))
	assert.Equal(t, "http://localhost:3000/uploads/uploads/1700000000000-abc.png", s.URL("uploads", "1700000000000-abc.png"))

	require.NoError(t, s.Delete(ctx, "uploads", "1700000000000-abc.png"))
	require.NoError(t, s.Delete(ctx, "uploads", "1700000000000-abc.png"))
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name   string
		bucket string
		object string
		want   error
	}{
		{"parent bucket", "..", "a.png", ErrInvalidBucket},
		{"upper bucket", "Uploads", "a.png", ErrInvalidBucket},
		{"slash in name", "uploads", "../a.png", ErrInvalidName},
		{"hidden name", "uploads", ".env", ErrInvalidName},
		{"empty name", "uploads", "", ErrInvalidName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Put(ctx, tt.bucket, tt.object, strings.NewReader("x"), 1, "text/plain")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
