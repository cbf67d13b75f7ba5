package handlers

import (
	"encoding/json"
	"net/http"

	"hrms-backend/internal/storage"
)

// UploadHandler is the object-store passthrough for document uploads.
type UploadHandler struct {
	Store *storage.PhotoStore
}

func NewUploadHandler(store *storage.PhotoStore) *UploadHandler {
	return &UploadHandler{Store: store}
}

// Upload stores the multipart "file" field and returns its key and URL.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxCaptureBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file uploaded"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	key, url, err := h.Store.Upload(r.Context(), header.Filename, contentType, file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url, "key": key})
}

// Delete removes a stored object by key.
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file key provided"})
		return
	}

	if err := h.Store.Delete(r.Context(), req.Key); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
