package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mhr996/school-dash-backend/internal/storage"
)

const urlExpiration = 15 * time.Minute

type documentService struct {
	store storage.Storage
}

func NewDocumentService(store storage.Storage) DocumentService {
	return &documentService{store: store}
}

// GetUploadURL issues a fresh storage key and an upload URL for it. The key
// is what callers persist on the bill or provider row.
func (s *documentService) GetUploadURL(ctx context.Context, filename, contentType string) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("%s/%s%s", time.Now().Format("2006/01"), uuid.NewString(), ext)

	uploadURL, err := s.store.GenerateUploadURL(ctx, key, contentType, urlExpiration)
	if err != nil {
		return "", "", fmt.Errorf("generate upload url: %w", err)
	}
	return key, uploadURL, nil
}

func (s *documentService) GetDownloadURL(ctx context.Context, key string) (string, error) {
	exists, _, err := s.store.FileExists(ctx, key)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("document %q not found", key)
	}
	return s.store.GenerateDownloadURL(ctx, key, urlExpiration)
}

func (s *documentService) DeleteDocument(ctx context.Context, key string) error {
	return s.store.DeleteFile(ctx, key)
}
