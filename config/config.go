package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"go.uber.org/multierr"
)

// Config holds all service configuration, loaded from the environment.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  ServerConfig
	Logger      LoggerConfig
	Postgres    PostgresConfig
	Redis       RedisConfig
	MinIO       MinIOConfig
	JWT         JWTConfig
	Cookie      CookieConfig
	Discord     DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string `env:"ENVIRONMENT" envDefault:"production"`
}

// IsDevelopment reports whether the service runs in development mode.
func (e EnvironmentConfig) IsDevelopment() bool {
	return e.Name == "development"
}

// ServerConfig is the configuration for the HTTP server.
type ServerConfig struct {
	Host           string   `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port           int      `env:"HTTP_PORT" envDefault:"8080"`
	Mode           string   `env:"HTTP_MODE" envDefault:"release"`
	AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string `env:"LOG_LEVEL" envDefault:"info"`
	Mode         string `env:"LOG_MODE" envDefault:"production"`
	Encoding     string `env:"LOG_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOG_COLOR_ENABLED" envDefault:"false"`
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"classhub"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"classhub"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// MinIOConfig is the configuration for MinIO object storage.
type MinIOConfig struct {
	Endpoint      string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey     string `env:"MINIO_ACCESS_KEY"`
	SecretKey     string `env:"MINIO_SECRET_KEY"`
	UseSSL        bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	Region        string `env:"MINIO_REGION"`
	AvatarBucket  string `env:"MINIO_AVATAR_BUCKET" envDefault:"classhub-avatars"`
	PublicBaseURL string `env:"MINIO_PUBLIC_BASE_URL"`
}

// JWTConfig is the configuration for credential signing.
// Access and refresh credentials are signed with distinct keys so a leaked
// access token cannot be replayed as a refresh token.
type JWTConfig struct {
	AccessSecret  string        `env:"JWT_ACCESS_SECRET"`
	RefreshSecret string        `env:"JWT_REFRESH_SECRET"`
	AccessTTL     time.Duration `env:"JWT_ACCESS_TTL" envDefault:"15m"`
	RefreshTTL    time.Duration `env:"JWT_REFRESH_TTL" envDefault:"168h"`
	Issuer        string        `env:"JWT_ISSUER" envDefault:"classhub-api"`
}

// CookieConfig is the configuration for HttpOnly cookie credentials.
type CookieConfig struct {
	Domain string `env:"COOKIE_DOMAIN"`
	Path   string `env:"COOKIE_PATH" envDefault:"/"`
}

// DiscordConfig is the configuration for Discord webhook notifications.
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// Load parses configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	var err error

	if cfg.JWT.AccessSecret == "" {
		err = multierr.Append(err, fmt.Errorf("JWT_ACCESS_SECRET is required"))
	} else if len(cfg.JWT.AccessSecret) < 32 {
		err = multierr.Append(err, fmt.Errorf("JWT_ACCESS_SECRET must be at least 32 characters"))
	}

	if cfg.JWT.RefreshSecret == "" {
		err = multierr.Append(err, fmt.Errorf("JWT_REFRESH_SECRET is required"))
	} else if len(cfg.JWT.RefreshSecret) < 32 {
		err = multierr.Append(err, fmt.Errorf("JWT_REFRESH_SECRET must be at least 32 characters"))
	}

	if cfg.JWT.AccessSecret != "" && cfg.JWT.AccessSecret == cfg.JWT.RefreshSecret {
		err = multierr.Append(err, fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ"))
	}

	if cfg.Postgres.Host == "" {
		err = multierr.Append(err, fmt.Errorf("POSTGRES_HOST is required"))
	}
	if cfg.Redis.Host == "" {
		err = multierr.Append(err, fmt.Errorf("REDIS_HOST is required"))
	}

	return err
}
