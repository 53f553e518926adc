package minio

import (
	"context"
	"io"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO defines the interface for object storage operations the service needs.
type MinIO interface {
	// HealthCheck verifies the connection is still healthy.
	HealthCheck(ctx context.Context) error
	// EnsureBucket creates the bucket if it does not exist yet.
	EnsureBucket(ctx context.Context, bucketName string) error
	// Upload stores an object and returns its public URL.
	Upload(ctx context.Context, req UploadRequest) (*FileInfo, error)
	// Remove deletes an object.
	Remove(ctx context.Context, bucketName, objectName string) error
	// Close marks the client as disconnected.
	Close() error
}

// Config is the connection configuration for MinIO.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	// PublicBaseURL is prepended to bucket/object when building returned URLs.
	PublicBaseURL string
}

type implMinIO struct {
	minioClient *minio.Client
	config      Config
	mu          sync.RWMutex
	connected   bool
}

// New creates a MinIO client and verifies connectivity by listing buckets.
func New(ctx context.Context, cfg Config) (MinIO, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, NewConnectionError(err)
	}

	m := &implMinIO{minioClient: client, config: cfg}
	if _, err := client.ListBuckets(ctx); err != nil {
		return nil, NewConnectionError(err)
	}
	m.connected = true
	return m, nil
}

// UploadRequest contains the parameters for uploading an object.
type UploadRequest struct {
	BucketName  string
	ObjectName  string
	Reader      io.Reader
	Size        int64
	ContentType string
}

// FileInfo represents metadata about a stored object.
type FileInfo struct {
	BucketName  string `json:"bucket_name"`
	ObjectName  string `json:"object_name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	ETag        string `json:"etag"`
	URL         string `json:"url,omitempty"`
}
