package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFilestore_UploadWritesAndReturnsURL(t *testing.T) {
	root := t.TempDir()
	fs, err := NewFilestore(root, "http://localhost:8080/files/", testLogger())
	require.NoError(t, err)

	url, err := fs.Upload(context.Background(), "abc.jpg", []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080/files/abc.jpg", url)

	data, err := os.ReadFile(filepath.Join(root, "abc.jpg"))
	require.NoError(t, err)
	require.Equal(t, "jpeg-bytes", string(data))
}

func TestFilestore_RefusesToOverwrite(t *testing.T) {
	root := t.TempDir()
	fs, err := NewFilestore(root, "http://localhost/files", testLogger())
	require.NoError(t, err)

	_, err = fs.Upload(context.Background(), "dup.jpg", []byte("first"), "image/jpeg")
	require.NoError(t, err)
	_, err = fs.Upload(context.Background(), "dup.jpg", []byte("second"), "image/jpeg")
	require.Error(t, err)

	data, err := os.ReadFile(filepath.Join(root, "dup.jpg"))
	require.NoError(t, err)
	require.Equal(t, "first", string(data))
}

func TestNewFilestore_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewFilestore(root, "http://localhost/files", testLogger())
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
