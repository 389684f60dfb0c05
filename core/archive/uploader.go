package archive

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Uploader copies run artifacts (generated import file, baseline
// snapshot) into an object storage bucket for retention.
type Uploader struct {
	client Client
	bucket string
	logger *zap.Logger
}

// NewUploader creates an artifact uploader.
func NewUploader(client Client, bucket string, logger *zap.Logger) *Uploader {
	return &Uploader{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Store uploads the given local files under a per-run prefix, creating
// the bucket on first use. Object names look like runs/<run-id>/<name>.
func (u *Uploader) Store(ctx context.Context, runID string, paths ...string) error {
	exists, err := u.client.BucketExists(ctx, u.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", u.bucket, err)
	}
	if !exists {
		if err := u.client.MakeBucket(ctx, u.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", u.bucket, err)
		}
	}

	for _, path := range paths {
		object := fmt.Sprintf("runs/%s/%s", runID, filepath.Base(path))
		opts := minio.PutObjectOptions{ContentType: contentType(path)}

		if _, err := u.client.FPutObject(ctx, u.bucket, object, path, opts); err != nil {
			return fmt.Errorf("failed to upload %s: %w", object, err)
		}

		u.logger.Info("Archived run artifact",
			zap.String("bucket", u.bucket),
			zap.String("object", object),
		)
	}

	return nil
}

// contentType picks the MIME type for an artifact based on its extension.
func contentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "application/json"
	case ".csv":
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
