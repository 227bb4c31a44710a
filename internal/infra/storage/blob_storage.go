// Package storage implements the media host adapter on top of a
// gocloud.dev blob bucket (S3 in production, local files in development).
package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"vidtube/config"
	"vidtube/internal/domain/lifecycle"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected by the storage.bucketUrl scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobStorage implements service.MediaStorage against a blob.Bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// New opens the configured bucket and registers its shutdown hook.
func New(params Params) (service.MediaStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Storage.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// NewWithBucket wires an already-open bucket. Used by tests with memblob.
func NewWithBucket(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.MediaStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload streams the local temporary file into the bucket under a generated
// key. The temp file is removed afterward regardless of outcome, so a failed
// upload never leaves stray files behind.
func (s *blobStorage) Upload(ctx context.Context, localPath, contentType string) (*service.MediaAsset, error) {
	defer func() {
		if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
			s.logger.WarnContext(ctx, "failed to remove temp upload file",
				slog.String("path", localPath), slog.String("error", err.Error()))
		}
	}()

	src, err := os.Open(localPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open temp upload file")
	}
	defer src.Close()

	key := uuid.NewString() + strings.ToLower(filepath.Ext(localPath))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, src); err != nil {
		// Closing after a failed copy aborts the write.
		_ = writer.Close()

		return nil, errors.Wrap(err, "failed to stream file to bucket")
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize bucket write")
	}

	return &service.MediaAsset{
		URL: s.publicURL(key),
		Key: key,
	}, nil
}

// Delete removes the asset identified by key from the bucket.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete blob")
	}

	return nil
}

func (s *blobStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return "/" + key
	}

	return s.publicBaseURL + "/" + path.Clean(key)
}
