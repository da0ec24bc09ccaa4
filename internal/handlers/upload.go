package handlers

import (
	"net/http"

	"mosaic-media/internal/storage"
)

// Upload stores a single image from the "image" field and returns its
// public URL, for editors that attach images before saving the entity.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(storage.MaxFileSize + 1024); err != nil {
		respondError(w, http.StatusBadRequest, "expected multipart form data")
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		respondError(w, http.StatusBadRequest, "image file is required")
		return
	}

	url, err := storage.SaveImage(h.uploadDir, files[0])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respond(w, http.StatusCreated, map[string]any{"url": url})
}
