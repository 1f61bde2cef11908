package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/saransh1220/rawconvert/internal/modules/conversion/domain"
)

// LocalStore implements ObjectStore on a directory, for running without a bucket.
type LocalStore struct {
	basePath string
}

// NewLocalStore creates a new local filesystem store
func NewLocalStore(basePath string) (*LocalStore, error) {
	// Ensure directory exists
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStore{basePath: basePath}, nil
}

// Fetch reads the file stored under key
func (l *LocalStore) Fetch(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.basePath, key))
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return data, nil
}

// Store writes body under key. Content type and visibility have no meaning on disk.
func (l *LocalStore) Store(ctx context.Context, key string, body io.Reader, contentType string, visibility domain.Visibility) error {
	fullPath := filepath.Join(l.basePath, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	outFile, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, body); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
