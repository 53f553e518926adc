package redis

import (
	"context"
	"sync"

	"classhub-api/config"
	pkgRedis "classhub-api/pkg/redis"
)

var (
	instance pkgRedis.IRedis
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes the Redis client once and returns it.
// A failed initialization can be retried by calling Connect again.
func Connect(_ context.Context, cfg config.RedisConfig) (pkgRedis.IRedis, error) {
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
		client, newErr := pkgRedis.New(pkgRedis.Config{
			Host:     cfg.Host,
			Port:     cfg.Port,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		if newErr != nil {
			err = newErr
			initErr = newErr
			return
		}
		instance = client
	})

	return instance, err
}

// Disconnect closes the Redis client.
func Disconnect(client pkgRedis.IRedis) {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		_ = client.Close()
	}
	if client == instance {
		instance = nil
		once = sync.Once{}
	}
}
