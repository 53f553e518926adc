package discord

import "time"

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = time.Second
	DefaultUsername   = "ClassHub Bot"

	// MaxMessageLength is Discord's hard limit on message content.
	MaxMessageLength = 2000

	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"
)
