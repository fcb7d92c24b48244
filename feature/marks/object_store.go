package marks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"catalog-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ObjectStore keeps marked ids as a JSON array in one storage object.
type ObjectStore struct {
	client storage.Client
	bucket string
	object string
	logger *zap.Logger
}

// NewObjectStore creates a store for bucket/object.
func NewObjectStore(client storage.Client, bucket, object string, logger *zap.Logger) *ObjectStore {
	return &ObjectStore{
		client: client,
		bucket: bucket,
		object: object,
		logger: logger,
	}
}

// Read returns the stored ids. A missing or corrupt document reads as empty.
func (s *ObjectStore) Read(ctx context.Context) ([]string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to get marks object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if isNotFound(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read marks object: %w", err)
	}

	ids := make([]string, 0)
	if len(bytes.TrimSpace(data)) == 0 {
		return ids, nil
	}
	if err := json.Unmarshal(data, &ids); err != nil {
		s.logger.Warn("Ignoring corrupt marks document",
			zap.String("object", s.object),
			zap.Error(err),
		)
		return []string{}, nil
	}
	return ids, nil
}

// Write replaces the stored document with ids.
func (s *ObjectStore) Write(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode marks: %w", err)
	}
	_, err = s.client.PutObject(ctx, s.bucket, s.object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to put marks object: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
