package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrEndpointRequired is returned when no endpoint is configured.
var ErrEndpointRequired = errors.New("minio: endpoint is required")

// IMinIO stores analysis artifacts in object storage.
type IMinIO interface {
	// Upload writes data to the bucket under objectName.
	Upload(ctx context.Context, objectName string, data []byte, contentType string) error
	// Health verifies the bucket is reachable.
	Health(ctx context.Context) error
}

// Config holds MinIO configuration.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type minioImpl struct {
	client *minio.Client
	bucket string
}

// New creates a MinIO client and ensures the bucket exists.
func New(ctx context.Context, cfg Config) (IMinIO, error) {
	if cfg.Endpoint == "" {
		return nil, ErrEndpointRequired
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &minioImpl{client: client, bucket: cfg.Bucket}, nil
}

func (m *minioImpl) Upload(ctx context.Context, objectName string, data []byte, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", objectName, err)
	}
	return nil
}

func (m *minioImpl) Health(ctx context.Context) error {
	if _, err := m.client.BucketExists(ctx, m.bucket); err != nil {
		return fmt.Errorf("minio health check failed: %w", err)
	}
	return nil
}
