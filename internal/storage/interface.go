package storage

import (
	"context"
	"io"
	"time"
)

// Storage defines the interface for object storage operations.
type Storage interface {
	// PutObject uploads an object to storage.
	PutObject(ctx context.Context, key string, body io.Reader, contentType string) error
	// GetPresignedURL generates a pre-signed URL for downloading an object.
	GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	// DeleteObject removes an object from storage.
	DeleteObject(ctx context.Context, key string) error
}

// Ensure S3Client implements Storage interface
var _ Storage = (*S3Client)(nil)
