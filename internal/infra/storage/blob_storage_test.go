package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) (*blobStorage, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	storage := NewWithBucket(bucket, "https://cdn.example.com/", logger).(*blobStorage)

	return storage, bucket
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	tempPath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(tempPath, []byte(content), 0o600))

	return tempPath
}

func TestBlobStorage_Upload(t *testing.T) {
	storage, bucket := newTestStorage(t)
	ctx := context.Background()

	tempPath := writeTempFile(t, "clip.mp4", "fake video bytes")

	asset, err := storage.Upload(ctx, tempPath, "video/mp4")
	require.NoError(t, err)
	assert.NotEmpty(t, asset.Key)
	assert.True(t, strings.HasSuffix(asset.Key, ".mp4"))
	assert.Equal(t, "https://cdn.example.com/"+asset.Key, asset.URL)

	// The bytes made it into the bucket.
	stored, err := bucket.ReadAll(ctx, asset.Key)
	require.NoError(t, err)
	assert.Equal(t, "fake video bytes", string(stored))

	// The temp file is gone after a successful upload.
	_, statErr := os.Stat(tempPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBlobStorage_UploadRemovesTempFileOnFailure(t *testing.T) {
	storage, _ := newTestStorage(t)

	tempPath := writeTempFile(t, "clip.mp4", "fake video bytes")

	// A canceled context makes the bucket write fail.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.Upload(ctx, tempPath, "video/mp4")
	require.Error(t, err)

	// The temp file is removed even when the upload fails.
	_, statErr := os.Stat(tempPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBlobStorage_UploadMissingFile(t *testing.T) {
	storage, _ := newTestStorage(t)

	_, err := storage.Upload(context.Background(), "/nonexistent/file.mp4", "video/mp4")
	assert.Error(t, err)
}

func TestBlobStorage_Delete(t *testing.T) {
	storage, bucket := newTestStorage(t)
	ctx := context.Background()

	tempPath := writeTempFile(t, "thumb.png", "fake image bytes")
	asset, err := storage.Upload(ctx, tempPath, "image/png")
	require.NoError(t, err)

	require.NoError(t, storage.Delete(ctx, asset.Key))

	exists, err := bucket.Exists(ctx, asset.Key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_DeleteMissingKeyFails(t *testing.T) {
	storage, _ := newTestStorage(t)

	// Deleting an unknown key surfaces the error; callers decide what to do.
	err := storage.Delete(context.Background(), "no-such-key")
	assert.Error(t, err)
}

func TestBlobStorage_DeleteEmptyKeyIsNoop(t *testing.T) {
	storage, _ := newTestStorage(t)

	assert.NoError(t, storage.Delete(context.Background(), ""))
}
