package domain

import (
	"context"
	"io"
)

// ObjectStore defines the bucket operations a job needs.
// This can be implemented by S3, MinIO, local filesystem, etc.
type ObjectStore interface {
	// Fetch reads the whole object stored under key
	Fetch(ctx context.Context, key string) ([]byte, error)

	// Store writes body under key, replacing whatever was there
	Store(ctx context.Context, key string, body io.Reader, contentType string, visibility Visibility) error
}

// Converter runs the raw development step and returns whatever the tool printed.
type Converter interface {
	Convert(ctx context.Context, inputPath, outputPath string, params Params) (string, error)
}
