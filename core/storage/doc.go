// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface covering what the
// catalog manager needs: reading catalog source objects, and reading and writing
// the marks document when marks are kept in a bucket.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider (AWS S3 or MinIO), which
// keeps storage interactions mockable in unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
//	    return err
//	}
package storage
