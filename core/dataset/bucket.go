package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"pokepc-dataset/core/storage"

	"github.com/minio/minio-go/v7"
)

// BucketSource reads documents from an object storage bucket under a key prefix.
type BucketSource struct {
	client  storage.Client
	bucket  string
	prefix  string
	timeout time.Duration
}

// NewBucketSource creates a source backed by the given bucket.
// Every call is bounded by timeout; a non-positive timeout defaults to 30 seconds.
func NewBucketSource(client storage.Client, bucket, prefix string, timeout time.Duration) *BucketSource {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &BucketSource{
		client:  client,
		bucket:  bucket,
		prefix:  strings.Trim(prefix, "/"),
		timeout: timeout,
	}
}

func (s *BucketSource) objectKey(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func (s *BucketSource) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// Location returns the s3-style URL of the named document.
func (s *BucketSource) Location(name string) string {
	return "s3://" + s.bucket + "/" + s.objectKey(name)
}

// ReadFile downloads the named document.
func (s *BucketSource) ReadFile(name string) ([]byte, error) {
	ctx, cancel := s.context()
	defer cancel()

	reader, err := s.client.GetObject(ctx, s.bucket, s.objectKey(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, s.translate(name, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, s.translate(name, err)
	}
	return data, nil
}

func (s *BucketSource) translate(name string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return fmt.Errorf("failed to read %s: %w", name, err)
}

// WriteFile uploads the named document.
func (s *BucketSource) WriteFile(name string, data []byte) error {
	ctx, cancel := s.context()
	defer cancel()

	_, err := s.client.PutObject(ctx, s.bucket, s.objectKey(name), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return nil
}

// Exists checks for the named object with a single-key listing.
func (s *BucketSource) Exists(name string) (bool, error) {
	ctx, cancel := s.context()
	defer cancel()

	key := s.objectKey(name)
	opts := minio.ListObjectsOptions{
		Prefix:    key,
		Recursive: false,
		MaxKeys:   1,
	}

	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return false, fmt.Errorf("failed to stat %s: %w", name, obj.Err)
		}
		if obj.Key == key {
			return true, nil
		}
	}
	return false, nil
}

// List returns the JSON document keys directly under dir.
func (s *BucketSource) List(dir string) ([]string, error) {
	ctx, cancel := s.context()
	defer cancel()

	prefix := s.objectKey(dir) + "/"
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}

	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", dir, obj.Err)
		}
		rel := strings.TrimPrefix(obj.Key, prefix)
		if rel == "" || strings.Contains(rel, "/") || !strings.HasSuffix(rel, jsonExt) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(rel, jsonExt))
	}
	sort.Strings(keys)
	return keys, nil
}

// Walk visits every object under the prefix.
func (s *BucketSource) Walk(fn func(name string) error) error {
	ctx, cancel := s.context()
	defer cancel()

	prefix := ""
	if s.prefix != "" {
		prefix = s.prefix + "/"
	}
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}

	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return fmt.Errorf("failed to walk bucket %s: %w", s.bucket, obj.Err)
		}
		name := strings.TrimPrefix(obj.Key, prefix)
		if name == "" || strings.HasSuffix(name, "/") {
			continue
		}
		if err := fn(name); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes the named documents in one batch.
func (s *BucketSource) Remove(names ...string) error {
	if len(names) == 0 {
		return nil
	}
	ctx, cancel := s.context()
	defer cancel()

	objectsCh := make(chan minio.ObjectInfo, len(names))
	for _, name := range names {
		objectsCh <- minio.ObjectInfo{Key: s.objectKey(name)}
	}
	close(objectsCh)

	var failed []string
	for err := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if err.Err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", err.ObjectName, err.Err))
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("batch delete had %d errors: %v", len(failed), failed)
	}
	return nil
}
