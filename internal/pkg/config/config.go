package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=1945"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth   AuthConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Upload UploadConfig
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET"`
	Required  bool          `env:"AUTH_REQUIRED, default=false"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,     default=24h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=zuperior"`
}

// RedisConfig enables the idempotency store when Addr is set.
type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR"`
	Username       string        `env:"REDIS_USERNAME"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB,        default=0"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
}

type UploadConfig struct {
	Provider string `env:"UPLOAD_PROVIDER,  default=imagekit"`
	MaxBytes string `env:"UPLOAD_MAX_BYTES, default=10M"`

	ImageKitPrivateKey string `env:"IMAGEKIT_PRIVATE_KEY"`
	ImageKitUploadURL  string `env:"IMAGEKIT_UPLOAD_URL, default=https://upload.imagekit.io/api/v1/files/upload"`
	ImageKitFolder     string `env:"IMAGEKIT_FOLDER,     default=/"`

	GCSBucket          string `env:"GCS_BUCKET"`
	GCSPublicBaseURL   string `env:"GCS_PUBLIC_BASE_URL"`
	GCSCredentialsFile string `env:"GCS_CREDENTIALS_FILE"`
}

// IsProduction reports whether ENV selects production behaviour.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig
// and validates it.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that cannot work together.
func (c *Config) Validate() error {
	var errs []error

	if c.Auth.Required && c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("AUTH_REQUIRED=true needs JWT_SECRET"))
	}

	switch c.Upload.Provider {
	case "imagekit":
		if c.Upload.ImageKitPrivateKey == "" {
			errs = append(errs, errors.New("UPLOAD_PROVIDER=imagekit needs IMAGEKIT_PRIVATE_KEY"))
		}
	case "gcs":
		if c.Upload.GCSBucket == "" {
			errs = append(errs, errors.New("UPLOAD_PROVIDER=gcs needs GCS_BUCKET"))
		}
	default:
		errs = append(errs, fmt.Errorf("UPLOAD_PROVIDER must be imagekit or gcs, got %q", c.Upload.Provider))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
