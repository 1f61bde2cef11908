package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/saransh1220/rawconvert/internal/modules/conversion/domain"
)

// MinioConfig encapsulates the connection info for a MinIO server.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// MinioStore implements ObjectStore on top of minio-go.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore builds a MinioStore. The region is passed through so the client
// never has to look up the bucket location.
func NewMinioStore(cfg MinioConfig) (*MinioStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint must be provided")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket must be provided")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("minio region must be provided")
	}

	endpoint := cfg.Endpoint
	secure := cfg.UseSSL
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		endpoint, secure = strings.TrimPrefix(endpoint, "https://"), true
	case strings.HasPrefix(endpoint, "http://"):
		endpoint, secure = strings.TrimPrefix(endpoint, "http://"), false
	}

	// One attempt per request; a failed fetch or store surfaces immediately.
	minio.MaxRetry = 1

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

// Fetch downloads the whole object.
func (m *MinioStore) Fetch(ctx context.Context, key string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("minio get %q failed: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("minio read %q failed: %w", key, err)
	}
	return data, nil
}

// Store uploads body under key. The canned ACL travels as an x-amz-acl header.
func (m *MinioStore) Store(ctx context.Context, key string, body io.Reader, contentType string, visibility domain.Visibility) error {
	size := int64(-1)
	if l, ok := body.(interface{ Len() int }); ok {
		size = int64(l.Len())
	}

	_, err := m.client.PutObject(ctx, m.bucket, key, body, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"x-amz-acl": string(visibility)},
	})
	if err != nil {
		return fmt.Errorf("minio put %q failed: %w", key, err)
	}
	return nil
}

var _ domain.ObjectStore = (*MinioStore)(nil)
