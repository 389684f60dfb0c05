// Package archive provides retention of sync run artifacts in object storage.
//
// It wraps the MinIO Go client to upload each run's generated import file and
// baseline snapshot under a per-run prefix. This supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock uploads for unit testing (as seen in core/archive/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the bucket on first use.
//   - FPutObject: Uploads a local artifact file.
//
// Retention is optional and disabled by default; a failed upload is logged as
// a warning and never fails a completed sync run.
package archive
