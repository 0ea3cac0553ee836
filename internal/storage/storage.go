package storage

import (
	"context"
	"io"
	"time"
)

// Storage is the backend for bill receipts and provider documents. The local
// implementation serves presigned-style URLs through the app itself; a cloud
// backend would return real presigned URLs.
type Storage interface {
	// GenerateUploadURL returns a URL the client PUTs the file to.
	GenerateUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error)

	// GenerateDownloadURL returns a URL the client GETs the file from.
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists checks if a file exists and returns its size.
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes a file from storage.
	DeleteFile(ctx context.Context, key string) error

	// SaveFile and ReadFile back the local upload/download HTTP handlers.
	SaveFile(key string, reader io.Reader) error
	ReadFile(key string) (io.ReadCloser, error)
}

// Config holds storage configuration.
type Config struct {
	Dir     string `yaml:"dir"`      // local directory for documents
	BaseURL string `yaml:"base_url"` // server base URL for generated links
}
