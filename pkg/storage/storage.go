package storage

import (
	"context"
	"io"
)

// Storage reads objects from S3-compatible storage.
type Storage interface {
	// Get retrieves an object. The caller is responsible for closing the
	// returned reader. Missing objects yield ErrNotFound.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// Config holds S3-compatible storage configuration.
type Config struct {
	// Bucket is the S3 bucket name (required).
	Bucket string `env:"STORAGE_BUCKET"`

	// AccessKey is the AWS access key ID (required).
	AccessKey string `env:"STORAGE_ACCESS_KEY"`

	// SecretKey is the AWS secret access key (required).
	SecretKey string `env:"STORAGE_SECRET_KEY"`

	// Endpoint is the custom S3 endpoint URL (optional, for MinIO or other S3-compatible services).
	Endpoint string `env:"STORAGE_ENDPOINT"`

	// Region is the AWS region (default: us-east-1).
	Region string `env:"STORAGE_REGION" envDefault:"us-east-1"`

	// Prefix is prepended to every key (optional).
	Prefix string `env:"STORAGE_PREFIX"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `env:"STORAGE_PATH_STYLE"`
}

// DefaultRegion is used when Config.Region is empty.
const DefaultRegion = "us-east-1"

// Enabled reports whether a bucket is configured.
func (c Config) Enabled() bool {
	return c.Bucket != ""
}

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
}

func (c *Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}
