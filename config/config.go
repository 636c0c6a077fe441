// Package config loads the process configuration once at startup. Every
// component receives its settings from here instead of reading the
// environment itself.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App        AppConfig
	Mongo      MongoConfig
	JWT        JWTConfig
	Cloudinary CloudinaryConfig
	Sendgrid   SendgridConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Port      string `envconfig:"PORT" default:"5000"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

type MongoConfig struct {
	URI      string        `envconfig:"MONGODB_URI" required:"true"`
	Database string        `envconfig:"MONGODB_DATABASE" default:"docushop"`
	Timeout  time.Duration `envconfig:"MONGODB_TIMEOUT" default:"10s"`
}

type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" required:"true"`
	TTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`
}

// CloudinaryConfig holds the blob storage credentials as a single
// cloudinary:// URL, the format the Cloudinary SDK consumes directly.
type CloudinaryConfig struct {
	URL    string `envconfig:"CLOUDINARY_URL" required:"true"`
	Folder string `envconfig:"CLOUDINARY_FOLDER" default:"products"`
}

// SendgridConfig is optional: with an empty API key the service starts
// without outbound email.
type SendgridConfig struct {
	APIKey string `envconfig:"SENDGRID_API_KEY"`
	Sender string `envconfig:"EMAIL_SENDER"`
}
