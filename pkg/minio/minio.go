package minio

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
)

// HealthCheck verifies the connection is still healthy by listing buckets.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.connected {
		return NewConnectionError(fmt.Errorf("not connected"))
	}
	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		return NewConnectionError(err)
	}
	return nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	if err := validateBucketName(bucketName); err != nil {
		return err
	}

	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return NewConnectionError(err)
	}
	if exists {
		return nil
	}

	if err := m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return NewConnectionError(err)
	}
	return nil
}

// Upload stores an object and returns its metadata including the public URL.
func (m *implMinIO) Upload(ctx context.Context, req UploadRequest) (*FileInfo, error) {
	if err := validateBucketName(req.BucketName); err != nil {
		return nil, err
	}
	if req.ObjectName == "" {
		return nil, NewInvalidInputError("object name is required")
	}
	if req.Reader == nil {
		return nil, NewInvalidInputError("reader is required")
	}

	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, minio.PutObjectOptions{
		ContentType: req.ContentType,
	})
	if err != nil {
		return nil, NewUploadFailedError(req.ObjectName, err)
	}

	return &FileInfo{
		BucketName:  req.BucketName,
		ObjectName:  req.ObjectName,
		Size:        info.Size,
		ContentType: req.ContentType,
		ETag:        info.ETag,
		URL:         m.objectURL(req.BucketName, req.ObjectName),
	}, nil
}

// Remove deletes an object. Missing objects are not an error.
func (m *implMinIO) Remove(ctx context.Context, bucketName, objectName string) error {
	if err := validateBucketName(bucketName); err != nil {
		return err
	}
	return m.minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
}

// Close marks the client as disconnected.
// The MinIO client manages its own connection pool, so no explicit shutdown is required.
func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

func (m *implMinIO) objectURL(bucketName, objectName string) string {
	base := strings.TrimSuffix(m.config.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if m.config.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, m.config.Endpoint)
	}
	return fmt.Sprintf("%s/%s/%s", base, bucketName, objectName)
}

func validateBucketName(bucketName string) error {
	if bucketName == "" {
		return NewInvalidInputError("bucket name is required")
	}
	if len(bucketName) < 3 || len(bucketName) > 63 {
		return NewInvalidInputError("bucket name must be between 3 and 63 characters")
	}
	return nil
}
