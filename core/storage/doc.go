// Package storage connects to the S3 compatible bucket holding a published dataset.
//
// Client is a narrow view of the MinIO API, mocked in core/storage/mocks. It is
// consumed by dataset.BucketSource when the service reads documents from a bucket
// and by the publish command, which mirrors a local directory into one.
//
//	client, err := storage.NewClient(cfg.Storage)
//	created, err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
