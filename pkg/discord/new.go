package discord

import (
	"context"
	"errors"
	"net/http"
	"time"

	"classhub-api/pkg/log"
)

// IDiscord sends operational messages to a Discord webhook.
type IDiscord interface {
	// SendMessage sends a simple text message.
	SendMessage(ctx context.Context, content string) error
	// ReportBug sends a bug report message to the configured channel.
	ReportBug(ctx context.Context, content string) error
	// Close closes idle connections in the HTTP client.
	Close() error
}

// Webhook contains webhook information for the Discord API.
type Webhook struct {
	ID    string
	Token string
}

// Config holds timeout and retry settings for webhook delivery.
type Config struct {
	Timeout         time.Duration
	RetryCount      int
	RetryDelay      time.Duration
	DefaultUsername string
}

// DefaultConfig returns the default Discord config.
func DefaultConfig() Config {
	return Config{
		Timeout:         DefaultTimeout,
		RetryCount:      DefaultRetryCount,
		RetryDelay:      DefaultRetryDelay,
		DefaultUsername: DefaultUsername,
	}
}

type discordImpl struct {
	l       log.Logger
	webhook Webhook
	config  Config
	client  *http.Client
}

// New creates a new Discord service instance with the provided logger and webhook.
func New(l log.Logger, webhook Webhook) (IDiscord, error) {
	if webhook.ID == "" || webhook.Token == "" {
		return nil, errors.New("webhook ID and token are required")
	}

	cfg := DefaultConfig()
	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}

	return &discordImpl{
		l:       l,
		webhook: webhook,
		config:  cfg,
		client:  client,
	}, nil
}
