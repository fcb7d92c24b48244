package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"catalog-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrSourceUnavailable is matched by every error that prevented obtaining source text.
var ErrSourceUnavailable = errors.New("catalog source unavailable")

// errEmptySource marks sources that returned blank content.
var errEmptySource = errors.New("source is empty")

// SourceError reports a failure to obtain the text of a source.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s unavailable: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrSourceUnavailable) hold for every SourceError.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// Loader fetches the raw text of a source.
type Loader interface {
	Load(ctx context.Context, source string) (string, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, source string) (string, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, source string) (string, error) {
	return f(ctx, source)
}

// FileLoader reads sources from files in a directory.
type FileLoader struct {
	dir string
}

// NewFileLoader creates a loader reading from dir.
func NewFileLoader(dir string) *FileLoader {
	return &FileLoader{dir: dir}
}

// Load reads dir/source. Source ids must be plain file names.
func (l *FileLoader) Load(ctx context.Context, source string) (string, error) {
	if source == "" || filepath.Base(source) != source {
		return "", fmt.Errorf("invalid source name %q", source)
	}
	data, err := os.ReadFile(filepath.Join(l.dir, source))
	if err != nil {
		return "", fmt.Errorf("failed to read source file: %w", err)
	}
	return string(data), nil
}

// StorageLoader reads sources from an object storage bucket.
type StorageLoader struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageLoader creates a loader reading objects named prefix+source from bucket.
func NewStorageLoader(client storage.Client, bucket, prefix string) *StorageLoader {
	return &StorageLoader{client: client, bucket: bucket, prefix: prefix}
}

// Load downloads the source object.
func (l *StorageLoader) Load(ctx context.Context, source string) (string, error) {
	obj, err := l.client.GetObject(ctx, l.bucket, l.prefix+source, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to get object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return "", fmt.Errorf("failed to read object: %w", err)
	}
	return string(data), nil
}

// NewLoader builds the loader selected by cfg.Backend.
func NewLoader(cfg Config, client storage.Client, bucket string) (Loader, error) {
	switch cfg.Backend {
	case BackendFile, "":
		return NewFileLoader(cfg.SourceDir), nil
	case BackendStorage:
		if client == nil {
			return nil, fmt.Errorf("storage backend requires a storage client")
		}
		return NewStorageLoader(client, bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown catalog backend %q", cfg.Backend)
	}
}
