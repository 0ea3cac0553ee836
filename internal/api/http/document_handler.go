package http

import (
	"io"
	"net/http"

	"github.com/mhr996/school-dash-backend/internal/logger"
	"github.com/mhr996/school-dash-backend/internal/service"
	"github.com/mhr996/school-dash-backend/internal/storage"
)

type DocumentHandler struct {
	documentSvc service.DocumentService
	local       *storage.LocalStorage // nil unless local storage is configured
}

func NewDocumentHandler(documentSvc service.DocumentService, local *storage.LocalStorage) *DocumentHandler {
	return &DocumentHandler{documentSvc: documentSvc, local: local}
}

type uploadURLRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

type uploadURLResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

func (h *DocumentHandler) GetUploadURL(w http.ResponseWriter, r *http.Request) {
	var req uploadURLRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Filename == "" {
		respondError(w, http.StatusBadRequest, "filename is required")
		return
	}
	key, uploadURL, err := h.documentSvc.GetUploadURL(r.Context(), req.Filename, req.ContentType)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, uploadURLResponse{Key: key, UploadURL: uploadURL})
}

func (h *DocumentHandler) GetDownloadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		respondError(w, http.StatusBadRequest, "key is required")
		return
	}
	downloadURL, err := h.documentSvc.GetDownloadURL(r.Context(), key)
	if err != nil {
		respondError(w, http.StatusNotFound, "document not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"download_url": downloadURL})
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		respondError(w, http.StatusBadRequest, "key is required")
		return
	}
	if err := h.documentSvc.DeleteDocument(r.Context(), key); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Upload receives the bytes for a key issued by GetUploadURL. Only wired when
// local storage backs the document service.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.local == nil {
		respondError(w, http.StatusNotFound, "local storage not configured")
		return
	}
	key := r.URL.Query().Get("key")
	if key == "" {
		respondError(w, http.StatusBadRequest, "key is required")
		return
	}
	defer r.Body.Close()
	if err := h.local.SaveFile(key, r.Body); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to store document")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"key": key})
}

// Download streams a locally stored document.
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	if h.local == nil {
		respondError(w, http.StatusNotFound, "local storage not configured")
		return
	}
	key := r.URL.Query().Get("key")
	if key == "" {
		respondError(w, http.StatusBadRequest, "key is required")
		return
	}
	file, err := h.local.ReadFile(key)
	if err != nil {
		respondError(w, http.StatusNotFound, "document not found")
		return
	}
	defer file.Close()
	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, file); err != nil {
		logger.Warn("document download interrupted", "key", key, "error", err)
	}
}
