package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage abstracts where submission assets live. Intake writes objects and
// hands public URLs to the database; the file handler reads back local
// objects in dev mode.
type Storage interface {
	// Save stores an object at the given key.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get opens the object at the given key.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the object. Missing objects are not an error.
	Delete(ctx context.Context, path string) error

	// Exists reports whether an object is present at the key.
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns the public URL for the object.
	GetURL(ctx context.Context, path string) (string, error)
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, s3, cloudflare_r2
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string // for S3/R2
	Region    string // for S3
	AccessKey string // for S3/R2
	SecretKey string // for S3/R2
	Endpoint  string // for R2 or custom S3
}

// NewStorage builds the backend selected by cfg.Type.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3", "cloudflare_r2":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
