// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the two
// operations the audit workflows need: fetching period-end GL/TB extracts
// from a bucket and uploading result workbooks back. The abstraction
// supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions for unit testing (see
// core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	rc, err := client.GetObject(ctx, cfg.Bucket, "2025/GL.xlsx", minio.GetObjectOptions{})
package storage
