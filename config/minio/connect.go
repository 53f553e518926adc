package minio

import (
	"context"
	"sync"
	"time"

	"classhub-api/config"
	miniopkg "classhub-api/pkg/minio"
)

const (
	// defaultConnectTimeout is the maximum time to wait for the initial connection.
	defaultConnectTimeout = 5 * time.Second
)

var (
	instance miniopkg.MinIO
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes the MinIO client once and returns it.
// A failed initialization can be retried by calling Connect again.
func Connect(ctx context.Context, cfg config.MinIOConfig) (miniopkg.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}
	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
		defer cancel()

		client, newErr := miniopkg.New(connectCtx, miniopkg.Config{
			Endpoint:      cfg.Endpoint,
			AccessKey:     cfg.AccessKey,
			SecretKey:     cfg.SecretKey,
			UseSSL:        cfg.UseSSL,
			Region:        cfg.Region,
			PublicBaseURL: cfg.PublicBaseURL,
		})
		if newErr != nil {
			err = newErr
			initErr = newErr
			return
		}

		if bucketErr := client.EnsureBucket(connectCtx, cfg.AvatarBucket); bucketErr != nil {
			err = bucketErr
			initErr = bucketErr
			return
		}

		instance = client
	})

	return instance, err
}

// Disconnect closes the MinIO client.
func Disconnect(_ context.Context) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		_ = instance.Close()
		instance = nil
		once = sync.Once{}
	}
}
