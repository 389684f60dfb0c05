package archive

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"toolbank-sync/core/archive/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func writeArtifact(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write artifact: %v", err)
	}
	return path
}

func TestUploader_Store(t *testing.T) {
	ctx := context.Background()

	t.Run("Uploads All Artifacts", func(t *testing.T) {
		output := writeArtifact(t, "toolbank_import.csv", "Command\n")
		snapshot := writeArtifact(t, "known_skus.json", "{}")

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		client.On("FPutObject", mock.Anything, "test-bucket", "runs/run-1/toolbank_import.csv", output, mock.Anything).
			Return(minio.UploadInfo{}, nil)
		client.On("FPutObject", mock.Anything, "test-bucket", "runs/run-1/known_skus.json", snapshot, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		u := NewUploader(client, "test-bucket", zap.NewNop())
		err := u.Store(ctx, "run-1", output, snapshot)
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Creates Missing Bucket", func(t *testing.T) {
		output := writeArtifact(t, "toolbank_import.csv", "Command\n")

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)
		client.On("FPutObject", mock.Anything, "test-bucket", "runs/run-2/toolbank_import.csv", output, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		u := NewUploader(client, "test-bucket", zap.NewNop())
		err := u.Store(ctx, "run-2", output)
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Upload Failure Propagates", func(t *testing.T) {
		output := writeArtifact(t, "toolbank_import.csv", "Command\n")

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		client.On("FPutObject", mock.Anything, "test-bucket", "runs/run-3/toolbank_import.csv", output, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("network down"))

		u := NewUploader(client, "test-bucket", zap.NewNop())
		err := u.Store(ctx, "run-3", output)
		assert.Error(t, err)
	})
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv", contentType("work/toolbank_import.csv"))
	assert.Equal(t, "application/json", contentType("known_skus.json"))
	assert.Equal(t, "application/octet-stream", contentType("feed.bin"))
}

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "test-bucket",
		}

		client, err := NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithScheme", func(t *testing.T) {
		cfg := Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}
