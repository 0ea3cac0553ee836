package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage keeps documents on the local filesystem and hands out URLs
// served by the app's own upload/download handlers.
type LocalStorage struct {
	baseURL      string
	documentsDir string
}

func NewLocalStorage(baseURL, dir string) (*LocalStorage, error) {
	documentsDir := filepath.Join(dir, "documents")
	if err := os.MkdirAll(documentsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create documents directory: %w", err)
	}
	return &LocalStorage{
		baseURL:      strings.TrimRight(baseURL, "/"),
		documentsDir: documentsDir,
	}, nil
}

func (s *LocalStorage) GenerateUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	return fmt.Sprintf("%s/api/v1/documents/upload?key=%s", s.baseURL, url.QueryEscape(key)), nil
}

func (s *LocalStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return fmt.Sprintf("%s/api/v1/documents/download?key=%s", s.baseURL, url.QueryEscape(key)), nil
}

func (s *LocalStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	info, err := os.Stat(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (s *LocalStorage) DeleteFile(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) SaveFile(key string, reader io.Reader) error {
	fullPath := s.path(key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (s *LocalStorage) ReadFile(key string) (io.ReadCloser, error) {
	return os.Open(s.path(key))
}

// path keeps keys inside documentsDir even when a key contains separators.
func (s *LocalStorage) path(key string) string {
	clean := filepath.Clean("/" + key)
	return filepath.Join(s.documentsDir, clean)
}
